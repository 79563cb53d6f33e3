package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ActivityTracker receives operator action events.
type ActivityTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// OperatorActivity reports every successful mutation made through the
// console API. It must run after SessionRequired.
func OperatorActivity(tracker ActivityTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if tracker == nil || c.Request.Method == http.MethodGet {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		sess, ok := GetSessionFromContext(c)
		if !ok {
			return
		}
		event := ActivityEventName(c.Request.Method, c.FullPath())
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}
		tracker.Enqueue(sess.User.ID, event, props)
	}
}

// ActivityEventName derives an event name from a route, e.g.
// POST /api/v1/water-well/collections/:id/deposit becomes
// "post_water_well_collections_deposit".
func ActivityEventName(method, route string) string {
	route = strings.TrimPrefix(route, "/api/v1")
	parts := make([]string, 0, 4)
	for _, segment := range strings.Split(route, "/") {
		if segment == "" || strings.HasPrefix(segment, ":") {
			continue
		}
		parts = append(parts, strings.ReplaceAll(segment, "-", "_"))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.ToLower(method) + "_" + strings.Join(parts, "_")
}
