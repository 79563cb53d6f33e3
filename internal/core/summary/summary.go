// Package summary computes the figures shown above each list. Each figure is
// tagged with the population it was computed over: the page held by the
// store, or the whole remote collection loaded by a large-page fetch.
package summary

import (
	"context"
	"fmt"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/core/ports"
	"github.com/SscSPs/estate_admin_console/internal/utils"
	"github.com/SscSPs/estate_admin_console/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// Sum adds value(r) over records.
func Sum[T any](records []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(value(r))
	}
	return total
}

// SumWhere adds value(r) over the records matching pred.
func SumWhere[T any](records []T, pred func(T) bool, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if pred(r) {
			total = total.Add(value(r))
		}
	}
	return total
}

// Count returns len(records).
func Count[T any](records []T) int { return len(records) }

// CountWhere counts the records matching pred.
func CountWhere[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// Amount builds a money figure.
func Amount(key, label string, value decimal.Decimal, scope domain.Scope) domain.Figure {
	return domain.Figure{Key: key, Label: label, Value: value, Display: utils.FormatMoney(value), Scope: scope}
}

// Quantity builds a count figure.
func Quantity(key, label string, n int, scope domain.Scope) domain.Figure {
	v := decimal.NewFromInt(int64(n))
	return domain.Figure{Key: key, Label: label, Value: v, Display: v.String(), Scope: scope}
}

// FetchAll loads the collection with one large-page request. Records beyond
// perPage are not fetched.
func FetchAll[T domain.Record](ctx context.Context, svc ports.ResourceService[T], q domain.ListQuery, perPage int) ([]T, error) {
	if perPage <= 0 {
		perPage = pagination.AggregatePerPage
	}
	q.Page = 1
	q.PerPage = perPage
	page, err := svc.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetching collection for summary: %w", err)
	}
	return page.Data, nil
}

// FetchEvery walks the collection perPage rows at a time until the backend
// reports its last page, so nothing past the first page is missed.
func FetchEvery[T domain.Record](ctx context.Context, svc ports.ResourceService[T], q domain.ListQuery, perPage int) ([]T, error) {
	if perPage <= 0 {
		perPage = pagination.AggregatePerPage
	}
	q.PerPage = perPage
	all := make([]T, 0, perPage)
	for pageNo := 1; ; pageNo++ {
		q.Page = pageNo
		page, err := svc.List(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d of collection: %w", pageNo, err)
		}
		all = append(all, page.Data...)
		// an empty page stops the walk even if totalPages disagrees
		if len(page.Data) == 0 || pageNo >= page.Pagination.TotalPages {
			return all, nil
		}
	}
}
