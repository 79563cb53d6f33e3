package domain

import "time"

// UserRole controls which console screens a user may operate.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleOperator UserRole = "operator"
)

// User represents a console user as returned by the backend.
type User struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	IsActive bool     `json:"isActive"`
	AuditFields
}

func (u User) GetID() string { return u.ID }

// Session is the authenticated operator's token and profile, persisted across restarts.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session's token is past its expiry. A zero
// expiry means the token carried none.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
