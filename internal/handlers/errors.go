package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"github.com/SscSPs/estate_admin_console/internal/dto"
	"github.com/SscSPs/estate_admin_console/internal/middleware"
	"github.com/SscSPs/estate_admin_console/internal/utils/validation"
	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP statuses. Failures of the backend
// itself surface as 502.
func statusFor(err error) int {
	var srvErr *apperrors.ServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &srvErr) && srvErr.Status == http.StatusUnauthorized:
		return http.StatusUnauthorized
	case errors.As(err, &srvErr), errors.Is(err, apperrors.ErrNetwork):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": <normalized message>} with the mapped status.
func respondError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	body := dto.ErrorResponse{Error: apperrors.Normalize(err, fallback)}

	var formErr *apperrors.FormError
	if errors.As(err, &formErr) {
		body.Fields = formErr.Fields
	}

	logFailure(c, err, fallback, status)
	c.JSON(status, body)
}

func logFailure(c *gin.Context, err error, msg string, status int) {
	logger := middleware.GetLoggerFromContext(c)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()), slog.Int("status", status))
		return
	}
	logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
}

// bindJSON decodes the body into req. Validation failures become a FormError.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		formErr := validation.ToFormError(err)
		if errors.Is(formErr, apperrors.ErrValidation) {
			respondError(c, formErr, "Invalid request")
			return false
		}
		middleware.GetLoggerFromContext(c).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}
