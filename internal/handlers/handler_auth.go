package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/SscSPs/estate_admin_console/internal/dto"
	"github.com/SscSPs/estate_admin_console/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles the operator's login session.
type authHandler struct {
	auth portssvc.AuthSvcFacade
}

// registerAuthRoutes sets up the routes for authentication. Login attempts
// are limited separately from the API.
func registerAuthRoutes(r *gin.Engine, auth portssvc.AuthSvcFacade, loginLimiter *limiter.Limiter) {
	h := &authHandler{auth: auth}

	group := r.Group("/auth")
	{
		if loginLimiter != nil {
			group.POST("/login", middleware.GinMiddlewarize(loginLimiter), h.login)
		} else {
			group.POST("/login", h.login)
		}
		group.POST("/logout", h.logout)
		group.GET("/me", h.me)
	}
}

func toSessionResponse(sess *domain.Session) dto.SessionResponse {
	resp := dto.SessionResponse{User: sess.User}
	if !sess.ExpiresAt.IsZero() {
		resp.ExpiresAt = sess.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// login godoc
// @Summary Log in
// @Description Exchanges the operator's credentials for a session held by the console
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Operator credentials"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	middleware.GetLoggerFromContext(c).Info("Operator logged in", slog.String("user_id", sess.User.ID))
	c.JSON(http.StatusOK, toSessionResponse(sess))
}

// logout godoc
// @Summary Log out
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		respondError(c, err, "Logout failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// me godoc
// @Summary Get the current session
// @Tags auth
// @Produce  json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	sess, ok := h.auth.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(sess))
}
