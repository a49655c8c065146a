package database

import (
	"fmt"

	"github.com/you/storefront/internal/infrastructure/storage"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a new database connection for the given storage driver
func Open(driver, dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), config)
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), config)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// AutoMigrate creates the key/value table used by the persistence adapter
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&storage.DBEntry{}); err != nil {
		return fmt.Errorf("failed to migrate kv_entries table: %w", err)
	}
	return nil
}
