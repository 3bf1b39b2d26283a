package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every environment-derived setting. The database and the
// dedicated auth backend pair are required; everything else has a
// development default.
type Config struct {
	DatabaseURL string

	// Dedicated authentication backend. Tokens are validated against its
	// JWKS endpoint.
	AuthBaseURL string
	AuthAnonKey string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool

	Port          int
	DashboardPath string
}

// Load reads configuration from the environment (and a .env file when
// present). Missing required variables are returned as errors so main can
// treat them as startup-fatal.
func Load() (*Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AuthBaseURL: os.Getenv("AUTH_BASE_URL"),
		AuthAnonKey: os.Getenv("AUTH_ANON_KEY"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",

		DashboardPath: getEnv("DASHBOARD_PATH", "/dashboard"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.AuthBaseURL == "" {
		return nil, fmt.Errorf("AUTH_BASE_URL environment variable is required")
	}
	if cfg.AuthAnonKey == "" {
		return nil, fmt.Errorf("AUTH_ANON_KEY environment variable is required")
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
	}
	cfg.Port = port

	return cfg, nil
}

// JWKSEndpoint is where the auth backend publishes its signing keys.
func (c *Config) JWKSEndpoint() string {
	return c.AuthBaseURL + "/.well-known/jwks.json"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
