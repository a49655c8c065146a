package config

import (
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"github.com/you/storefront/internal/config"
)

// LoadTestConfig loads configuration for E2E testing. Built-in defaults are used
// instead of config/config.yml; overrides are applied as environment variables.
func LoadTestConfig(t *testing.T, overrides map[string]string) *config.Config {
	t.Helper()

	if err := godotenv.Load(".env.test"); err != nil {
		t.Logf("Warning: Could not load .env.test file: %v", err)
	}

	t.Setenv("GIN_MODE", "test")
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("STORAGE_PATH", filepath.Join(t.TempDir(), "storage.json"))
	for k, v := range overrides {
		t.Setenv(k, v)
	}

	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Failed to load test configuration: %v", err)
	}
	return cfg
}
