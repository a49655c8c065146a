package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/you/storefront/domain"
	"github.com/you/storefront/internal/config"
	"github.com/you/storefront/internal/infrastructure/audit"
	"github.com/you/storefront/internal/infrastructure/auth"
	"github.com/you/storefront/internal/infrastructure/database"
	"github.com/you/storefront/internal/infrastructure/remote"
	"github.com/you/storefront/internal/infrastructure/storage"
	"github.com/you/storefront/internal/logger"
	"github.com/you/storefront/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Log    *zap.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	HTTPClient  *http.Client
	Storage     domain.KeyValueStore

	// Remote clients
	Identity domain.IdentityClient
	Catalog  domain.CatalogClient

	// Services
	Bypass   domain.CredentialMatcher
	Events   domain.EventLogger
	Sessions *services.SessionStoreImpl
	Products *services.CatalogStoreImpl
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Container, error) {
	if log == nil {
		log = logger.Nop()
	}
	container := &Container{Config: cfg, Log: log}

	if err := container.initStorage(ctx); err != nil {
		container.Close()
		return nil, err
	}
	container.initClients()
	if err := container.initServices(ctx); err != nil {
		container.Close()
		return nil, err
	}

	return container, nil
}

func (c *Container) initStorage(ctx context.Context) error {
	cfg := c.Config

	switch cfg.StorageDriver {
	case "memory":
		c.Storage = storage.NewMemoryStore()
	case "file":
		c.Storage = storage.NewFileStore(cfg.StoragePath)
	case "redis":
		rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rdb.Ping(ctx); err != nil {
			rdb.Close()
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.RedisClient = rdb.Client
		c.Storage = storage.NewRedisStore(rdb.Client, cfg.StoragePrefix, 0)
	case "postgres", "sqlite":
		level := gormlogger.Warn
		if cfg.LogLevel == "debug" {
			level = gormlogger.Info
		}
		db, err := database.Open(cfg.StorageDriver, cfg.StorageDSN, level)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		c.DB = db
		if err := database.AutoMigrate(db); err != nil {
			return err
		}
		c.Storage = storage.NewGormStore(db, cfg.StoragePrefix)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownDriver, cfg.StorageDriver)
	}

	c.Log.Info("storage ready", zap.String("driver", cfg.StorageDriver), zap.Bool("prefixed", sharedDriver(cfg.StorageDriver)))
	return nil
}

// sharedDriver reports whether the driver's keyspace can be shared with other
// processes; only those drivers apply Config.StoragePrefix.
func sharedDriver(driver string) bool {
	switch driver {
	case "redis", "postgres", "sqlite":
		return true
	}
	return false
}

func (c *Container) initClients() {
	validate := validator.New()
	c.HTTPClient = remote.NewHTTPClient(c.Config.RemoteTimeout)
	c.Identity = remote.NewIdentityClient(c.Config.IdentityURL, c.HTTPClient, validate)
	c.Catalog = remote.NewCatalogClient(c.Config.CatalogURL, c.HTTPClient, validate)
}

func (c *Container) initServices(ctx context.Context) error {
	if c.Config.BypassEnabled {
		matcher, err := auth.NewBypassMatcher(c.Config.BypassUsername, c.Config.BypassPassword, bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		c.Bypass = matcher
		c.Log.Warn("test credential bypass is enabled", zap.String("username", c.Config.BypassUsername))
	} else {
		c.Bypass = auth.NoBypass{}
	}

	c.Events = audit.NewZapEventLogger(c.Log)

	hydrateCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	c.Sessions = services.NewSessionStore(hydrateCtx, c.Identity, c.Storage, c.Bypass, c.Events, c.Log)
	c.Products = services.NewCatalogStore(c.Catalog, c.Events, c.Log)
	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
