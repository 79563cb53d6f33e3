package services

import (
	"context"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/SscSPs/estate_admin_console/internal/core/store"
	"github.com/SscSPs/estate_admin_console/internal/dto"
)

// NewUserService creates the users screen. The initial password is
// forwarded to the backend and never kept by the console.
func NewUserService(st *store.Store[domain.User]) portssvc.UserSvcFacade {
	return NewResourceService[domain.User, dto.CreateUserRequest, dto.UpdateUserRequest](st,
		func(_ context.Context, req dto.CreateUserRequest) (any, error) {
			return dto.CreateUserPayload{User: req.ToRecord(), Password: req.Password}, nil
		},
	)
}
