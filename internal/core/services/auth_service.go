package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/core/ports"
	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/SscSPs/estate_admin_console/internal/dto"
	"github.com/SscSPs/estate_admin_console/internal/utils"
)

// authService logs the operator in against the backend and keeps the
// resulting token as the process wide session.
type authService struct {
	BaseService
	gateway   ports.AuthGateway
	sessions  ports.SessionManager
	jwtSecret string
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// NewAuthService creates the auth service. When jwtSecret is set, tokens
// returned by the backend must carry a valid signature.
func NewAuthService(gateway ports.AuthGateway, sessions ports.SessionManager, jwtSecret string) portssvc.AuthSvcFacade {
	return &authService{
		BaseService: newBaseService(),
		gateway:     gateway,
		sessions:    sessions,
		jwtSecret:   jwtSecret,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, error) {
	if err := s.Validate(ctx, req); err != nil {
		return nil, err
	}

	token, user, err := s.gateway.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.LogError(ctx, err, "Login rejected", slog.String("email", req.Email))
		return nil, err
	}

	expiresAt, err := utils.TokenExpiry(token, s.jwtSecret)
	if err != nil {
		if s.jwtSecret != "" {
			s.LogError(ctx, err, "Backend token failed validation", slog.String("user_id", user.ID))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthenticated, err)
		}
		// Opaque tokens carry no expiry; the backend rejects them once stale.
		s.LogDebug(ctx, "Session token is not a JWT", slog.String("user_id", user.ID))
	}

	sess := domain.Session{Token: token, User: user, ExpiresAt: expiresAt}
	if err := s.sessions.Set(sess); err != nil {
		s.LogError(ctx, err, "Failed to store session", slog.String("user_id", user.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Operator logged in", slog.String("user_id", user.ID))
	return &sess, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(); err != nil {
		s.LogError(ctx, err, "Failed to clear session")
		return err
	}
	s.LogInfo(ctx, "Operator logged out")
	return nil
}

func (s *authService) Current() (*domain.Session, bool) {
	return s.sessions.Current()
}
