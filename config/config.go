package config

import (
	"os"
)

type Config struct {
	Environment   string
	ServerPort    string
	APIBaseURL    string
	SessionDBPath string
	FrontendURL   string
}

func Load() (*Config, error) {
	return &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		ServerPort:    getEnv("PORT", "8080"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8000/api"),
		SessionDBPath: getEnv("SESSION_DB", "prodea_sessions.db"),
		FrontendURL:   getEnv("FRONTEND_URL", ""),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
