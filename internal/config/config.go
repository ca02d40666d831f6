package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"service-market/utils"
)

// Config holds the runtime settings of the server.
type Config struct {
	Port          string
	LogLevel      string
	JWTSecret     string
	TokenTTL      time.Duration
	SweepInterval time.Duration
}

// Load reads configuration from the environment, with a .env file as
// fallback for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Info("no .env file found, using environment only", nil)
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret"),
		TokenTTL:      time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		SweepInterval: time.Duration(getEnvInt("SWEEP_INTERVAL_SECONDS", 30)) * time.Second,
	}
}

// getEnv returns an environment variable or a default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		utils.Warn("invalid integer in environment, using default", map[string]any{"key": key, "value": value})
		return fallback
	}
	return parsed
}
