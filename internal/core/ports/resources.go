package ports

import (
	"context"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
)

// ResourceService is the outbound port to one REST resource of the backend.
// Implementations never retry; failures are returned as apperrors types.
type ResourceService[T domain.Record] interface {
	// List returns one page of the collection in the canonical envelope.
	List(ctx context.Context, q domain.ListQuery) (domain.Page[T], error)

	// GetByID fails with apperrors.NotFoundError when the backend answers 404.
	GetByID(ctx context.Context, id string) (T, error)

	// Create posts a record without id and returns it with the id the backend assigned.
	Create(ctx context.Context, payload any) (T, error)

	// Update sends a partial payload and returns the full updated record.
	Update(ctx context.Context, id string, patch any) (T, error)

	// Delete fails with apperrors.NotFoundError when the id is already absent.
	Delete(ctx context.Context, id string) error
}

// AuthGateway authenticates the console operator against the backend.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (token string, user domain.User, err error)
}

// SessionStore persists the operator's session across restarts.
type SessionStore interface {
	Load() (*domain.Session, error)
	Save(session domain.Session) error
	Clear() error
}

// SessionManager holds the active operator session in memory.
type SessionManager interface {
	Set(session domain.Session) error
	Clear() error
	Current() (*domain.Session, bool)
}
