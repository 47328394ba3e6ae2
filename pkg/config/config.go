package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Storefront
	Port           string
	AppEnv         string
	APIBaseURL     string
	LogLevel       string
	RequestTimeout time.Duration
	BannerInterval time.Duration
	ToastDuration  time.Duration

	// Reference catalog API
	CatalogPort   string
	DatabaseURL   string
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
	TokenTTL      time.Duration
}

func Load() *Config {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	return &Config{
		Port:           getEnv("PORT", "8080"),
		AppEnv:         getEnv("APP_ENV", "local"),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
		BannerInterval: time.Duration(getEnvInt("BANNER_INTERVAL_MS", 4000)) * time.Millisecond,
		ToastDuration:  time.Duration(getEnvInt("TOAST_MS", 2500)) * time.Millisecond,

		CatalogPort:   getEnv("CATALOG_PORT", "5000"),
		DatabaseURL:   getEnv("DATABASE_URL", "file:catalog.sqlite"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "Admin@123"),
		TokenTTL:      time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
	}
}

// IsProduction gates Secure cookies.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
