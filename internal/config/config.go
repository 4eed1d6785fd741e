package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string

	// LLM configuration
	GeminiAPIKey   string
	GeminiModel    string
	GatewayTimeout time.Duration
}

// Load reads the .env file when present and falls back to process env vars.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseDSN:    getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=aihr port=5432 sslmode=disable"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GatewayTimeout: 90 * time.Second,
	}

	if raw := os.Getenv("GATEWAY_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.GatewayTimeout = d
		} else {
			slog.Warn("invalid GATEWAY_TIMEOUT, keeping default", "value", raw)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
