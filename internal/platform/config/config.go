package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// BackendBaseURL is the root of the REST backend, e.g. https://api.example.com/api.
	BackendBaseURL string
	RequestTimeout time.Duration

	DefaultPerPage   int
	AggregatePerPage int

	SessionFile string
	// JWTSecret, when set, is used to validate tokens issued by the backend.
	JWTSecret string

	// RateLimit is a ulule/limiter formatted rate, e.g. "300-M".
	RateLimit      string
	AllowedOrigins []string
	LogLevel       slog.Level

	// PosthogAPIKey enables operator activity tracking when set.
	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("BACKEND_BASE_URL", "http://localhost:3000/api")
	v.SetDefault("REQUEST_TIMEOUT", "15s")
	v.SetDefault("DEFAULT_PER_PAGE", 10)
	v.SetDefault("AGGREGATE_PER_PAGE", 1000)
	v.SetDefault("SESSION_FILE", ".console-session.json")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		BackendBaseURL:   v.GetString("BACKEND_BASE_URL"),
		DefaultPerPage:   v.GetInt("DEFAULT_PER_PAGE"),
		AggregatePerPage: v.GetInt("AGGREGATE_PER_PAGE"),
		SessionFile:      v.GetString("SESSION_FILE"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		RateLimit:        v.GetString("RATE_LIMIT"),
		PosthogAPIKey:    v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:  v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	timeoutStr := v.GetString("REQUEST_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
		log.Printf("Warning: Invalid value for REQUEST_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.RequestTimeout = timeout

	if cfg.DefaultPerPage <= 0 {
		cfg.DefaultPerPage = 10
	}
	if cfg.AggregatePerPage <= 0 {
		cfg.AggregatePerPage = 1000
	}

	for _, origin := range strings.Split(v.GetString("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", levelStr)
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Backend tokens are decoded without signature validation.")
	}

	return cfg
}
