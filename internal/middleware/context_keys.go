package middleware

import (
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// sessionKey is the key used to store the operator session in the Gin context.
const sessionKey = contextKey("session")

// GetSessionFromContext retrieves the operator session stored by SessionRequired.
// It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	val, exists := c.Get(string(sessionKey))
	if !exists {
		return nil, false
	}

	sess, ok := val.(*domain.Session)
	if !ok || sess == nil {
		return nil, false
	}
	return sess, true
}
