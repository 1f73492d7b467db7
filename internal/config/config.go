package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr           string
	CORSAllowedOrigins []string

	// External backend
	BackendBaseURL string
	BackendTimeout time.Duration

	// Session
	SessionSecret string
	SessionStore  string // redis | postgres | memory
	SessionMaxAge time.Duration
	// RefreshMargin refreshes the access token this long before its real
	// expiry. Zero means refresh exactly on expiry.
	RefreshMargin time.Duration
	CookieSecure  bool

	// Stores
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	DatabaseURL string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),

		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:8000"),
		BackendTimeout: getEnvDuration("BACKEND_TIMEOUT", 15*time.Second),

		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionStore:  getEnv("SESSION_STORE", "redis"),
		// Aligned to the refresh-token lifetime.
		SessionMaxAge: getEnvDuration("SESSION_MAX_AGE", 7*24*time.Hour),
		RefreshMargin: getEnvDuration("REFRESH_MARGIN", 0),
		CookieSecure:  strings.ToLower(getEnv("COOKIE_SECURE", "false")) == "true",

		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   getEnv("REDIS_PASS", ""),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		DatabaseURL: getEnv("DATABASE_URL", ""),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
