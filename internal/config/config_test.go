package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://dummyjson.com/auth/login", cfg.IdentityURL)
	assert.Equal(t, "https://dummyjson.com/products", cfg.CatalogURL)
	assert.Equal(t, 10*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, "file", cfg.StorageDriver)
	assert.True(t, cfg.BypassEnabled)
	assert.Equal(t, "testadmin", cfg.BypassUsername)
	assert.Equal(t, "Test@123", cfg.BypassPassword)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFile_YAMLAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
app:
  port: 9090
  environment: production
remote:
  identity_url: http://identity.local/login
  catalog_url: http://catalog.local/products
  timeout: 3s
storage:
  driver: redis
redis:
  addr: redis.local:6379
  db: 2
bypass:
  enabled: false
`)

	t.Setenv("REDIS_DB", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://identity.local/login", cfg.IdentityURL)
	assert.Equal(t, "http://catalog.local/products", cfg.CatalogURL)
	assert.Equal(t, 3*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, "redis", cfg.StorageDriver)
	assert.Equal(t, "redis.local:6379", cfg.RedisAddr)
	assert.Equal(t, 5, cfg.RedisDB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.BypassEnabled)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed yaml",
			body: "app: [",
		},
		{
			name: "invalid timeout",
			body: "remote:\n  timeout: soon\n",
		},
		{
			name: "unknown driver",
			body: "storage:\n  driver: floppy\n",
		},
		{
			name: "postgres without dsn",
			body: "storage:\n  driver: postgres\n",
		},
		{
			name: "file without path",
			body: "storage:\n  driver: file\n  path: \"\"\n",
		},
		{
			name: "bypass enabled without password",
			body: "bypass:\n  enabled: true\n  password: \"\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidate_Drivers(t *testing.T) {
	base := func() *Config {
		return &Config{
			IdentityURL:   "http://identity",
			CatalogURL:    "http://catalog",
			RemoteTimeout: time.Second,
		}
	}

	tests := []struct {
		name      string
		mutate    func(c *Config)
		expectErr bool
	}{
		{name: "memory", mutate: func(c *Config) { c.StorageDriver = "memory" }},
		{name: "sqlite with dsn", mutate: func(c *Config) { c.StorageDriver = "sqlite"; c.StorageDSN = "file.db" }},
		{name: "redis without addr", mutate: func(c *Config) { c.StorageDriver = "redis" }, expectErr: true},
		{name: "missing identity url", mutate: func(c *Config) { c.StorageDriver = "memory"; c.IdentityURL = "" }, expectErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.StorageDriver = "memory"; c.RemoteTimeout = 0 }, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
