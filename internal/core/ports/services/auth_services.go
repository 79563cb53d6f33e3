package services

import (
	"context"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/dto"
)

// AuthSvcFacade manages the operator session shared by every screen.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, error)
	Logout(ctx context.Context) error

	// Current returns the active session, or false when nobody is logged in
	// or the token has expired.
	Current() (*domain.Session, bool)
}
