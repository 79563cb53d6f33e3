package dto

import "github.com/SscSPs/estate_admin_console/internal/core/domain"

// LoginRequest holds the operator's credentials, forwarded to the backend.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest defines the data needed to create a console user.
type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=admin manager operator"`
	Password string          `json:"password" binding:"required,min=8"`
}

// CreateUserPayload is what the backend receives: the user plus its initial password.
type CreateUserPayload struct {
	domain.User
	Password string `json:"password"`
}

func (r CreateUserRequest) ToRecord() domain.User {
	return domain.User{
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
		IsActive: true,
	}
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name     *string          `json:"name,omitempty" binding:"omitempty,min=1"`
	Role     *domain.UserRole `json:"role,omitempty" binding:"omitempty,oneof=admin manager operator"`
	IsActive *bool            `json:"isActive,omitempty"`
}

// SessionResponse is returned by the login and me endpoints.
type SessionResponse struct {
	User      domain.User `json:"user"`
	ExpiresAt string      `json:"expiresAt,omitempty"`
}
