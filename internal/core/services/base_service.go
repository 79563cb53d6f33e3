package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/estate_admin_console/internal/middleware"
	"github.com/SscSPs/estate_admin_console/internal/utils/validation"
	"github.com/go-playground/validator/v10"
)

// BaseService provides common functionality for all services
type BaseService struct {
	validate *validator.Validate
}

func newBaseService() BaseService {
	return BaseService{validate: validation.New()}
}

// Validate checks a form before anything is sent to the backend. Failures are
// returned as *apperrors.FormError.
func (s *BaseService) Validate(ctx context.Context, form any) error {
	if s.validate == nil {
		s.validate = validation.New()
	}
	if err := validation.Struct(s.validate, form); err != nil {
		s.LogDebug(ctx, "Form rejected", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
