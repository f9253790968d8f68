package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string // "development", "production"

	// Database
	DatabaseURL string

	// CORS
	AllowedOrigins []string

	// Catalog refresh
	CatalogRefreshEnabled  bool
	CatalogRefreshSchedule string        // Cron expression (e.g., "0 3 * * *" for daily at 03:00)
	CatalogRefreshTimeout  time.Duration // Timeout for a complete reload

	// Features
	EnableSeedEndpoint bool // Admin seeding of sample catalog data
}

func Load() *Config {
	// Best-effort .env loading for local development; real deployments set
	// the environment directly.
	_ = godotenv.Load()

	env := getEnv("ENV", "development")

	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  env,

		// Database
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/cardpath?sslmode=disable"),

		// CORS
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),

		// Catalog refresh
		CatalogRefreshEnabled:  getBoolEnv("CATALOG_REFRESH_ENABLED", true),
		CatalogRefreshSchedule: getEnv("CATALOG_REFRESH_SCHEDULE", "0 3 * * *"), // Default: daily at 03:00
		CatalogRefreshTimeout:  getDurationEnv("CATALOG_REFRESH_TIMEOUT", time.Minute),

		// Features
		EnableSeedEndpoint: getBoolEnv("ENABLE_SEED_ENDPOINT", env != "production"),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
