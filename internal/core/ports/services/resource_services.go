package services

import (
	"context"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
)

// ResourceReaderSvc defines the read side of a resource screen.
type ResourceReaderSvc[T domain.Record] interface {
	// Fetch loads one page into the resource store and returns the resulting state.
	// On failure the returned state still carries the previous page.
	Fetch(ctx context.Context, q domain.ListQuery) (domain.ResourceState[T], error)

	// Snapshot returns the store's current state without contacting the backend.
	Snapshot() domain.ResourceState[T]

	// Get retrieves one record from the backend.
	Get(ctx context.Context, id string) (T, error)

	// Summarize computes the summary figures of the screen for the given page.
	Summarize(ctx context.Context, page []T) ([]domain.Figure, error)
}

// ResourceWriterSvc defines the form side of a resource screen. C is the
// create form and U the partial update form.
type ResourceWriterSvc[T domain.Record, C any, U any] interface {
	Create(ctx context.Context, req C) (T, error)
	Update(ctx context.Context, id string, req U) (T, error)
	Delete(ctx context.Context, id string) error
}

// ResourceSvcFacade combines the read and form sides of one resource screen.
type ResourceSvcFacade[T domain.Record, C any, U any] interface {
	ResourceReaderSvc[T]
	ResourceWriterSvc[T, C, U]
}
