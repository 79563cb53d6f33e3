package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/SscSPs/estate_admin_console/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// Limiters groups the rate limiters applied to the console API.
// A nil limiter disables limiting for its routes.
type Limiters struct {
	API   *limiter.Limiter
	Login *limiter.Limiter
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	limiters Limiters,
	tracker middleware.ActivityTracker,
) {
	// Add health check route
	r.GET("/health", health)

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth, limiters.Login)

	// Setup API v1 routes behind the session check
	setupAPIV1Routes(r, services, limiters.API, tracker)
}

// health godoc
// @Summary Health check
// @Tags system
// @Produce  plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific screen registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, apiLimiter *limiter.Limiter, tracker middleware.ActivityTracker) {
	v1 := r.Group("/api/v1", middleware.SessionRequired(services.Auth))
	if apiLimiter != nil {
		v1.Use(middleware.RateLimit(apiLimiter))
	}
	if tracker != nil {
		v1.Use(middleware.OperatorActivity(tracker))
	}

	registerResourceRoutes(v1, "/banking/accounts", services.Accounts, "accounts", "account")
	registerResourceRoutes(v1, "/banking/transactions", services.Transactions, "transactions", "transaction")

	registerResourceRoutes(v1, "/water-supply/customers", services.Customers, "customers", "customer")
	registerReadingRoutes(v1, services.Readings)
	registerResourceRoutes(v1, "/water-supply/payments", services.Payments, "payments", "payment")

	registerCollectionRoutes(v1, services.Collections)

	registerResourceRoutes(v1, "/users", services.Users, "users", "user")

	registerResourceRoutes(v1, "/properties", services.Properties, "properties", "property")
	registerResourceRoutes(v1, "/tenants", services.Tenants, "tenants", "tenant")
	registerResourceRoutes(v1, "/contracts", services.Contracts, "contracts", "contract")
	registerResourceRoutes(v1, "/rent-payments", services.RentPayments, "rent payments", "rent payment")
	registerResourceRoutes(v1, "/toilet-revenue", services.ToiletRevenues, "toilet revenue", "toilet revenue record")
}
