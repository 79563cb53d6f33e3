package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/SscSPs/estate_admin_console/internal/core/store"
)

// BuildFunc turns a validated create form into the payload posted to the backend.
type BuildFunc[C any] func(ctx context.Context, req C) (any, error)

// SummaryFunc computes the figures shown above a list.
type SummaryFunc[T domain.Record] func(ctx context.Context, page []T) ([]domain.Figure, error)

// ResourceOption configures a resourceService.
type ResourceOption[T domain.Record, C any, U any] func(*resourceService[T, C, U])

// WithSummary sets the summary computation of the screen.
func WithSummary[T domain.Record, C any, U any](fn SummaryFunc[T]) ResourceOption[T, C, U] {
	return func(s *resourceService[T, C, U]) {
		s.summarize = fn
	}
}

// resourceService is the generic screen service: it validates forms,
// dispatches them through the resource store and reports the store's state.
type resourceService[T domain.Record, C any, U any] struct {
	BaseService
	store     *store.Store[T]
	build     BuildFunc[C]
	summarize SummaryFunc[T]
}

// NewResourceService creates a screen service over st.
func NewResourceService[T domain.Record, C any, U any](st *store.Store[T], build BuildFunc[C], options ...ResourceOption[T, C, U]) portssvc.ResourceSvcFacade[T, C, U] {
	return newResourceService(st, build, options...)
}

func newResourceService[T domain.Record, C any, U any](st *store.Store[T], build BuildFunc[C], options ...ResourceOption[T, C, U]) *resourceService[T, C, U] {
	svc := &resourceService[T, C, U]{
		BaseService: newBaseService(),
		store:       st,
		build:       build,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// FromRecord builds the payload with the form's ToRecord method.
func FromRecord[T any, C interface{ ToRecord() T }]() BuildFunc[C] {
	return func(_ context.Context, req C) (any, error) {
		return req.ToRecord(), nil
	}
}

func (s *resourceService[T, C, U]) Fetch(ctx context.Context, q domain.ListQuery) (domain.ResourceState[T], error) {
	err := s.store.Fetch(ctx, q)
	if errors.Is(err, store.ErrStaleFetch) {
		s.LogDebug(ctx, "Fetch superseded", slog.String("store", s.store.Name()))
		err = nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch page", slog.String("store", s.store.Name()), slog.Int("page", q.Page))
	}
	return s.store.Snapshot(), err
}

func (s *resourceService[T, C, U]) Snapshot() domain.ResourceState[T] {
	return s.store.Snapshot()
}

func (s *resourceService[T, C, U]) Get(ctx context.Context, id string) (T, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to get record", slog.String("store", s.store.Name()), slog.String("id", id))
		return rec, err
	}
	return rec, nil
}

func (s *resourceService[T, C, U]) Summarize(ctx context.Context, page []T) ([]domain.Figure, error) {
	if s.summarize == nil {
		return []domain.Figure{}, nil
	}
	figures, err := s.summarize(ctx, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute summary", slog.String("store", s.store.Name()))
		return nil, err
	}
	return figures, nil
}

func (s *resourceService[T, C, U]) Create(ctx context.Context, req C) (T, error) {
	var zero T
	if err := s.Validate(ctx, req); err != nil {
		return zero, err
	}
	payload, err := s.build(ctx, req)
	if err != nil {
		return zero, err
	}
	return s.create(ctx, payload)
}

func (s *resourceService[T, C, U]) Update(ctx context.Context, id string, req U) (T, error) {
	var zero T
	if err := s.Validate(ctx, req); err != nil {
		return zero, err
	}
	return s.update(ctx, id, req)
}

// update sends patch without validating it. Domain services use it for
// patches they computed themselves.
func (s *resourceService[T, C, U]) update(ctx context.Context, id string, patch any) (T, error) {
	rec, err := s.store.Update(ctx, id, patch)
	if err != nil {
		s.LogError(ctx, err, "Failed to update record", slog.String("store", s.store.Name()), slog.String("id", id))
		var zero T
		return zero, fmt.Errorf("update %s %s: %w", s.store.Name(), id, err)
	}
	s.LogInfo(ctx, "Record updated", slog.String("store", s.store.Name()), slog.String("id", id))
	return rec, nil
}

// create posts payload without validating it.
func (s *resourceService[T, C, U]) create(ctx context.Context, payload any) (T, error) {
	rec, err := s.store.Create(ctx, payload)
	if err != nil {
		s.LogError(ctx, err, "Failed to create record", slog.String("store", s.store.Name()))
		var zero T
		return zero, fmt.Errorf("create %s: %w", s.store.Name(), err)
	}
	s.LogInfo(ctx, "Record created", slog.String("store", s.store.Name()), slog.String("id", rec.GetID()))
	return rec, nil
}

func (s *resourceService[T, C, U]) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete record", slog.String("store", s.store.Name()), slog.String("id", id))
		return fmt.Errorf("delete %s %s: %w", s.store.Name(), id, err)
	}
	s.LogInfo(ctx, "Record deleted", slog.String("store", s.store.Name()), slog.String("id", id))
	return nil
}
