package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	APIBaseURL              string
	SessionSecret           string
	SessionCookieName       string
	Port                    string
	Environment             string
	AllowedOrigins          []string
	DashboardRefreshSeconds int
	UpstreamMonitorEnabled  bool
}

func NewConfig() *Config {
	allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := []string{"http://localhost:3000"}
	if allowedOriginsStr != "" {
		allowedOrigins = strings.Split(allowedOriginsStr, ",")
	}

	return &Config{
		APIBaseURL:              getEnvOrDefault("API_BASE_URL", "http://localhost:5000/api/v1"),
		SessionSecret:           os.Getenv("SESSION_SECRET"),
		SessionCookieName:       getEnvOrDefault("SESSION_COOKIE_NAME", "hms_session"),
		Port:                    getEnvOrDefault("PORT", "8080"),
		Environment:             getEnvOrDefault("ENVIRONMENT", "development"),
		AllowedOrigins:          allowedOrigins,
		DashboardRefreshSeconds: getEnvIntOrDefault("DASHBOARD_REFRESH_SECONDS", 30),
		UpstreamMonitorEnabled:  getEnvOrDefault("UPSTREAM_MONITOR", "on") != "off",
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
