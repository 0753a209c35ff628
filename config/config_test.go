package config

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"API_BASE_URL", "SESSION_SECRET", "SESSION_COOKIE_NAME", "PORT",
		"ENVIRONMENT", "ALLOWED_ORIGINS", "DASHBOARD_REFRESH_SECONDS", "UPSTREAM_MONITOR",
	} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	if cfg.APIBaseURL != "http://localhost:5000/api/v1" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.SessionCookieName != "hms_session" {
		t.Errorf("SessionCookieName = %q", cfg.SessionCookieName)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q", cfg.Environment)
	}
	if cfg.DashboardRefreshSeconds != 30 {
		t.Errorf("DashboardRefreshSeconds = %d", cfg.DashboardRefreshSeconds)
	}
	if !cfg.UpstreamMonitorEnabled {
		t.Error("monitor should default to on")
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.hospital.example/v1")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("DASHBOARD_REFRESH_SECONDS", "10")
	t.Setenv("UPSTREAM_MONITOR", "off")

	cfg := NewConfig()

	if cfg.APIBaseURL != "https://api.hospital.example/v1" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.DashboardRefreshSeconds != 10 {
		t.Errorf("DashboardRefreshSeconds = %d", cfg.DashboardRefreshSeconds)
	}
	if cfg.UpstreamMonitorEnabled {
		t.Error("UPSTREAM_MONITOR=off should disable the monitor")
	}
}

func TestRefreshIntervalRejectsGarbage(t *testing.T) {
	t.Setenv("DASHBOARD_REFRESH_SECONDS", "soon")
	if got := NewConfig().DashboardRefreshSeconds; got != 30 {
		t.Errorf("DashboardRefreshSeconds = %d, want default 30", got)
	}

	t.Setenv("DASHBOARD_REFRESH_SECONDS", "-5")
	if got := NewConfig().DashboardRefreshSeconds; got != 30 {
		t.Errorf("DashboardRefreshSeconds = %d, want default 30", got)
	}
}
