package middleware

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// SessionRequired rejects requests while no operator is logged in or the
// session token has expired. The backend enforces authorization itself; the
// gateway only needs a token to forward.
func SessionRequired(auth portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)

		sess, ok := auth.Current()
		if !ok {
			logger.Warn("Request without an active session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", sess.User.ID))
		c.Set(string(loggerKey), enrichedLogger)
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), enrichedLogger))
		c.Set(string(sessionKey), sess)

		c.Next()
	}
}
