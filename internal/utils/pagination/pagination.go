package pagination

import (
	"net/url"
	"sort"
	"strconv"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
)

const (
	// DefaultPerPage is used when a list query does not choose a page size.
	DefaultPerPage = 10
	// AggregatePerPage is the page size of "fetch all" requests made to
	// compute collection scoped summaries.
	AggregatePerPage = 1000
)

// TotalPages returns ceil(totalItems / perPage). It is 0 for an empty collection.
func TotalPages(totalItems, perPage int) int {
	if totalItems <= 0 || perPage <= 0 {
		return 0
	}
	return (totalItems + perPage - 1) / perPage
}

// Resolve fills in the defaults of a query.
func Resolve(q domain.ListQuery, defaultPerPage int) domain.ListQuery {
	if defaultPerPage <= 0 {
		defaultPerPage = DefaultPerPage
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	return q
}

// Values encodes the query as URL parameters: page, perPage and every filter.
// Empty filter values are skipped.
func Values(q domain.ListQuery) url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("perPage", strconv.Itoa(q.PerPage))
	}
	keys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if q.Filters[k] == "" {
			continue
		}
		v.Set(k, q.Filters[k])
	}
	return v
}

// Normalize repairs a descriptor received from the backend so that the
// invariants hold: received <= itemsPerPage, totalPages =
// ceil(totalItems/itemsPerPage) and currentPage lies in [1, totalPages] when
// the collection is not empty. An oversized page widens itemsPerPage rather
// than dropping rows. A nil descriptor is synthesized as a single page
// holding received items.
func Normalize(p *domain.Pagination, q domain.ListQuery, received int) domain.Pagination {
	if p == nil {
		perPage := q.PerPage
		if perPage < received {
			perPage = received
		}
		if perPage < 1 {
			perPage = 1
		}
		out := domain.Pagination{
			CurrentPage:  1,
			TotalItems:   received,
			ItemsPerPage: perPage,
		}
		out.TotalPages = TotalPages(out.TotalItems, out.ItemsPerPage)
		return out
	}

	out := *p
	if out.ItemsPerPage < 1 {
		out.ItemsPerPage = q.PerPage
	}
	if out.ItemsPerPage < 1 {
		out.ItemsPerPage = DefaultPerPage
	}
	if out.ItemsPerPage < received {
		out.ItemsPerPage = received
	}
	if out.TotalItems < received {
		out.TotalItems = received
	}
	out.TotalPages = TotalPages(out.TotalItems, out.ItemsPerPage)
	if out.TotalItems > 0 {
		if out.CurrentPage < 1 {
			out.CurrentPage = 1
		}
		if out.CurrentPage > out.TotalPages {
			out.CurrentPage = out.TotalPages
		}
	} else if out.CurrentPage < 1 {
		out.CurrentPage = 1
	}
	return out
}

// Consistent reports whether the backend's descriptor already satisfied the invariants.
func Consistent(p domain.Pagination) bool {
	if p.ItemsPerPage < 1 {
		return false
	}
	if p.TotalPages != TotalPages(p.TotalItems, p.ItemsPerPage) {
		return false
	}
	if p.TotalItems > 0 && (p.CurrentPage < 1 || p.CurrentPage > p.TotalPages) {
		return false
	}
	return true
}
