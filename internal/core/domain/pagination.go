package domain

// Pagination describes one page of a list query result.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// Page is the canonical list result every resource service returns, whatever
// envelope shape the backend used on the wire.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ListQuery carries the page selection and domain filters of a list request.
// Zero Page or PerPage means "use the default".
type ListQuery struct {
	Page    int
	PerPage int
	Filters map[string]string
}

// WithFilter returns a copy of q with key set to value.
func (q ListQuery) WithFilter(key, value string) ListQuery {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[key] = value
	q.Filters = filters
	return q
}
