package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/core/ports"
	"github.com/SscSPs/estate_admin_console/internal/utils/pagination"
	"github.com/google/uuid"
)

// Resource is an in-memory implementation of ports.ResourceService that
// honours the backend contract: server assigned ids, equality filters on
// JSON field names, page/perPage pagination, full-record update responses and
// NotFoundError on missing ids. It is used for unit tests and offline runs.
type Resource[T domain.Record] struct {
	mu      sync.Mutex
	name    string
	order   []string
	records map[string]T
	err     error
	calls   map[string]int
}

var _ ports.ResourceService[domain.User] = (*Resource[domain.User])(nil)

// NewResource creates an empty collection. name is used in errors.
func NewResource[T domain.Record](name string) *Resource[T] {
	return &Resource[T]{name: name, records: map[string]T{}, calls: map[string]int{}}
}

// WithError makes every subsequent call fail with err until it is reset with nil.
func (m *Resource[T]) WithError(err error) *Resource[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// Seed inserts records as the backend would hold them, keeping their ids.
func (m *Resource[T]) Seed(records ...T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range records {
		if _, exists := m.records[r.GetID()]; !exists {
			m.order = append(m.order, r.GetID())
		}
		m.records[r.GetID()] = r
	}
}

// Calls returns how many times op ("list", "get", "create", "update", "delete") ran.
func (m *Resource[T]) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *Resource[T]) enter(op string) error {
	m.calls[op]++
	return m.err
}

func (m *Resource[T]) List(ctx context.Context, q domain.ListQuery) (domain.Page[T], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("list"); err != nil {
		return domain.Page[T]{}, err
	}

	matched := make([]T, 0, len(m.order))
	for _, id := range m.order {
		rec := m.records[id]
		ok, err := matches(rec, q.Filters)
		if err != nil {
			return domain.Page[T]{}, err
		}
		if ok {
			matched = append(matched, rec)
		}
	}

	q = pagination.Resolve(q, pagination.DefaultPerPage)
	start := (q.Page - 1) * q.PerPage
	if start > len(matched) {
		start = len(matched)
	}
	end := start + q.PerPage
	if end > len(matched) {
		end = len(matched)
	}

	pg := domain.Pagination{
		CurrentPage:  q.Page,
		TotalItems:   len(matched),
		ItemsPerPage: q.PerPage,
		TotalPages:   pagination.TotalPages(len(matched), q.PerPage),
	}
	return domain.Page[T]{Data: append([]T{}, matched[start:end]...), Pagination: pg}, nil
}

func (m *Resource[T]) GetByID(ctx context.Context, id string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if err := m.enter("get"); err != nil {
		return zero, err
	}
	rec, ok := m.records[id]
	if !ok {
		return zero, &apperrors.NotFoundError{Resource: m.name, ID: id}
	}
	return rec, nil
}

func (m *Resource[T]) Create(ctx context.Context, payload any) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if err := m.enter("create"); err != nil {
		return zero, err
	}

	fields, err := toMap(payload)
	if err != nil {
		return zero, err
	}
	id := uuid.NewString()
	fields["id"] = id

	var rec T
	if err := fromMap(fields, &rec); err != nil {
		return zero, err
	}
	m.records[id] = rec
	m.order = append(m.order, id)
	return rec, nil
}

func (m *Resource[T]) Update(ctx context.Context, id string, patch any) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if err := m.enter("update"); err != nil {
		return zero, err
	}
	current, ok := m.records[id]
	if !ok {
		return zero, &apperrors.NotFoundError{Resource: m.name, ID: id}
	}

	fields, err := toMap(current)
	if err != nil {
		return zero, err
	}
	changes, err := toMap(patch)
	if err != nil {
		return zero, err
	}
	for k, v := range changes {
		fields[k] = v
	}
	fields["id"] = id

	var rec T
	if err := fromMap(fields, &rec); err != nil {
		return zero, err
	}
	m.records[id] = rec
	return rec, nil
}

func (m *Resource[T]) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("delete"); err != nil {
		return err
	}
	if _, ok := m.records[id]; !ok {
		return &apperrors.NotFoundError{Resource: m.name, ID: id}
	}
	delete(m.records, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func matches[T any](rec T, filters map[string]string) (bool, error) {
	if len(filters) == 0 {
		return true, nil
	}
	fields, err := toMap(rec)
	if err != nil {
		return false, err
	}
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		want := filters[k]
		if want == "" {
			continue
		}
		if fmt.Sprint(fields[k]) != want {
			return false, nil
		}
	}
	return true, nil
}

func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return out, nil
}

func fromMap(fields map[string]any, out any) error {
	b, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}
