package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DB_HOST", "test-host")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("DB_HOST")

	cfg := Load()

	if cfg.Server.Port != "9000" {
		t.Errorf("Expected PORT to be '9000', got '%s'", cfg.Server.Port)
	}

	if cfg.Database.Host != "test-host" {
		t.Errorf("Expected DB_HOST to be 'test-host', got '%s'", cfg.Database.Host)
	}

	// Defaults apply where no env var is set
	if cfg.Server.Host != "localhost" {
		t.Errorf("Expected default HOST to be 'localhost', got '%s'", cfg.Server.Host)
	}

	if cfg.Redis.Port != 6379 {
		t.Errorf("Expected default REDIS_PORT to be 6379, got %d", cfg.Redis.Port)
	}

	if cfg.Cache.SolveTTLMin != 30 {
		t.Errorf("Expected default CACHE_SOLVE_TTL_MIN to be 30, got %d", cfg.Cache.SolveTTLMin)
	}
}

func TestGetStringConfig(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	value := GetStringConfig("TEST_VAR", "default-value")
	if value != "test-value" {
		t.Errorf("Expected 'test-value', got '%s'", value)
	}

	value = GetStringConfig("NONEXISTENT_VAR", "default-value")
	if value != "default-value" {
		t.Errorf("Expected 'default-value', got '%s'", value)
	}
}

func TestValidateConfig_SQLiteBypassesPostgresKeys(t *testing.T) {
	os.Setenv("DB_SQLITE_PATH", "/tmp/layout.db")
	defer os.Unsetenv("DB_SQLITE_PATH")

	Load()

	if err := ValidateConfig(); err != nil {
		t.Errorf("Expected SQLite path to satisfy validation, got %v", err)
	}
}
