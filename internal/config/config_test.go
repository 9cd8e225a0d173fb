package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.DatabaseURL != "" || cfg.DatabaseName != "" {
		t.Errorf("database config should stay empty when unset, got %q / %q", cfg.DatabaseURL, cfg.DatabaseName)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "pizzeria")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.DatabaseURL != "mongodb://localhost:27017" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "pizzeria" {
		t.Errorf("DatabaseName = %q", cfg.DatabaseName)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}
