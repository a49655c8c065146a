package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for the config file unless STOREFRONT_CONFIG is set
const DefaultPath = "config/config.yml"

type AppConfig struct {
	Port        int    `yaml:"port"`
	GinMode     string `yaml:"gin_mode"`
	LogLevel    string `yaml:"log_level"`
	Environment string `yaml:"environment"`
}

type RemoteConfig struct {
	IdentityURL string `yaml:"identity_url"`
	CatalogURL  string `yaml:"catalog_url"`
	Timeout     string `yaml:"timeout"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"` // memory, file, redis, postgres, sqlite
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
	Prefix string `yaml:"prefix"` // key namespace for shared backends (redis, postgres, sqlite)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type BypassConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type ConfigFile struct {
	App     AppConfig     `yaml:"app"`
	Remote  RemoteConfig  `yaml:"remote"`
	Storage StorageConfig `yaml:"storage"`
	Redis   RedisConfig   `yaml:"redis"`
	Bypass  BypassConfig  `yaml:"bypass"`
}

type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	Environment    string
	IdentityURL    string
	CatalogURL     string
	RemoteTimeout  time.Duration
	StorageDriver  string
	StoragePath    string
	StorageDSN     string
	StoragePrefix  string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	BypassEnabled  bool
	BypassUsername string
	BypassPassword string
}

// IsDevelopment reports whether the process runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "" || c.Environment == "development"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func envBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// Load reads .env (optional), the YAML config file and environment overrides
func Load() (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	return LoadFile(env("STOREFRONT_CONFIG", DefaultPath))
}

// LoadFile builds the config from a specific YAML file plus environment overrides.
// A missing file falls back to defaults.
func LoadFile(path string) (*Config, error) {
	configFile := defaults()
	if err := readConfigFile(path, configFile); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	timeout, err := time.ParseDuration(env("REMOTE_TIMEOUT", configFile.Remote.Timeout))
	if err != nil {
		return nil, fmt.Errorf("invalid remote timeout: %w", err)
	}

	cfg := &Config{
		Port:           env("APP_PORT", strconv.Itoa(configFile.App.Port)),
		GinMode:        env("GIN_MODE", configFile.App.GinMode),
		LogLevel:       env("LOG_LEVEL", configFile.App.LogLevel),
		Environment:    env("APP_ENVIRONMENT", configFile.App.Environment),
		IdentityURL:    env("IDENTITY_URL", configFile.Remote.IdentityURL),
		CatalogURL:     env("CATALOG_URL", configFile.Remote.CatalogURL),
		RemoteTimeout:  timeout,
		StorageDriver:  env("STORAGE_DRIVER", configFile.Storage.Driver),
		StoragePath:    env("STORAGE_PATH", configFile.Storage.Path),
		StorageDSN:     env("STORAGE_DSN", configFile.Storage.DSN),
		StoragePrefix:  env("STORAGE_PREFIX", configFile.Storage.Prefix),
		RedisAddr:      env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:  env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:        envInt("REDIS_DB", configFile.Redis.DB),
		BypassEnabled:  envBool("BYPASS_ENABLED", configFile.Bypass.Enabled),
		BypassUsername: env("BYPASS_USERNAME", configFile.Bypass.Username),
		BypassPassword: env("BYPASS_PASSWORD", configFile.Bypass.Password),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that the selected storage driver has what it needs
func (c *Config) Validate() error {
	if c.IdentityURL == "" {
		return errors.New("remote.identity_url is required")
	}
	if c.CatalogURL == "" {
		return errors.New("remote.catalog_url is required")
	}
	if c.RemoteTimeout <= 0 {
		return errors.New("remote.timeout must be positive")
	}

	switch c.StorageDriver {
	case "memory":
	case "file":
		if c.StoragePath == "" {
			return errors.New("storage.path is required for the file driver")
		}
	case "redis":
		if c.RedisAddr == "" {
			return errors.New("redis.addr is required for the redis driver")
		}
	case "postgres", "sqlite":
		if c.StorageDSN == "" {
			return fmt.Errorf("storage.dsn is required for the %s driver", c.StorageDriver)
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.StorageDriver)
	}

	if c.BypassEnabled && (c.BypassUsername == "" || c.BypassPassword == "") {
		return errors.New("bypass.username and bypass.password are required when bypass is enabled")
	}
	return nil
}

func defaults() *ConfigFile {
	return &ConfigFile{
		App: AppConfig{
			Port:        8080,
			GinMode:     "release",
			LogLevel:    "info",
			Environment: "development",
		},
		Remote: RemoteConfig{
			IdentityURL: "https://dummyjson.com/auth/login",
			CatalogURL:  "https://dummyjson.com/products",
			Timeout:     "10s",
		},
		Storage: StorageConfig{
			Driver: "file",
			Path:   ".storefront/storage.json",
			Prefix: "storefront:",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Bypass: BypassConfig{
			Enabled:  true,
			Username: "testadmin",
			Password: "Test@123",
		},
	}
}

func readConfigFile(path string, into *ConfigFile) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(bytes, into); err != nil {
		return fmt.Errorf("could not parse config yaml: %w", err)
	}
	return nil
}
