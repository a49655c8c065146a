package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/you/storefront/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBEntry represents the database model for a stored key (with GORM tags)
type DBEntry struct {
	Key       string    `gorm:"column:entry_key;primaryKey;size:255"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBEntry) TableName() string {
	return "kv_entries"
}

// GormStore implements domain.KeyValueStore on a SQL table through GORM
type GormStore struct {
	db     *gorm.DB
	prefix string
}

// NewGormStore creates a new gorm-backed store. The table must already be migrated.
func NewGormStore(db *gorm.DB, prefix string) *GormStore {
	return &GormStore{db: db, prefix: prefix}
}

// Get implements domain.KeyValueStore
func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry DBEntry
	err := s.db.WithContext(ctx).Where("entry_key = ?", s.prefix+key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return entry.Value, true, nil
}

// Set implements domain.KeyValueStore
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	entry := DBEntry{Key: s.prefix + key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Remove implements domain.KeyValueStore
func (s *GormStore) Remove(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("entry_key = ?", s.prefix+key).Delete(&DBEntry{}).Error
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

var _ domain.KeyValueStore = (*GormStore)(nil)
