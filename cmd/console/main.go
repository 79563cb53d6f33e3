package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/estate_admin_console/internal/adapters/rest"
	"github.com/SscSPs/estate_admin_console/internal/adapters/session"
	"github.com/SscSPs/estate_admin_console/internal/core/services"
	"github.com/SscSPs/estate_admin_console/internal/handlers"
	"github.com/SscSPs/estate_admin_console/internal/middleware"
	"github.com/SscSPs/estate_admin_console/internal/platform/config"
	"github.com/SscSPs/estate_admin_console/internal/utils"
	"github.com/SscSPs/estate_admin_console/internal/utils/validation"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// loginRate bounds login attempts per client IP.
const loginRate = "5-M"

// @title Estate Admin Console API
// @version 1.0
// @description Console gateway for the estate, water and banking admin screens.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := validation.RegisterGin(); err != nil {
		logger.Error("Failed to configure request validation", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessionStore, err := session.NewFileStore(cfg.SessionFile)
	if err != nil {
		logger.Error("Failed to open session file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	sessions := session.NewManager(sessionStore, logger)

	backend, err := rest.NewClient(rest.Config{
		BaseURL:     cfg.BackendBaseURL,
		Timeout:     cfg.RequestTimeout,
		TokenSource: sessions,
	}, logger)
	if err != nil {
		logger.Error("Failed to create backend client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	// Login runs before any token exists.
	anonymous, err := rest.NewClient(rest.Config{
		BaseURL: cfg.BackendBaseURL,
		Timeout: cfg.RequestTimeout,
	}, logger)
	if err != nil {
		logger.Error("Failed to create backend client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	stores := services.NewStores(cfg, rest.NewResourceProvider(backend), logger)
	container := services.NewServiceContainer(cfg, stores, rest.NewAuthClient(anonymous), sessions)

	apiLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	loginLimiter, err := middleware.NewRateLimiter(loginRate)
	if err != nil {
		logger.Error("Failed to create login rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tracker, err := utils.NewPosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	if err != nil {
		logger.Error("Failed to initialize activity tracking", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer tracker.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the browser UI)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, container, handlers.Limiters{API: apiLimiter, Login: loginLimiter}, tracker)

	logger.Info("Console gateway starting",
		slog.String("port", cfg.Port),
		slog.String("backend", cfg.BackendBaseURL))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		tracker.Close()
		os.Exit(1)
	}
}
