// internal/infrastructure/storage/sqlite/store.go
package sqlite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/your-org/coffee-stock-backend/internal/config"
	"github.com/your-org/coffee-stock-backend/internal/domain/stock"
	"github.com/your-org/coffee-stock-backend/internal/infrastructure/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// KVEntry is one row of the key-value blob table backing the persistence
// gateway. The state blob and the seed flag are its only keys.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:100"`
	Value []byte `gorm:"not null"`
}

// Store is the local-file persistence gateway, a SQLite database holding
// the serialized state blob
type Store struct {
	db     *gorm.DB
	config *config.Config
}

// NewStore opens (creating if needed) the SQLite database for the
// configured path and migrates the key-value table.
func NewStore(cfg *config.Config) (*Store, error) {
	if dir := filepath.Dir(cfg.Storage.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	gormConfig := &gorm.Config{}
	if !cfg.App.Debug {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Storage.SQLitePath), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv table: %w", err)
	}

	return &Store{db: db, config: cfg}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Health checks the database connection.
func (s *Store) Health() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// LoadState returns the stored state blob, or (nil, nil) when none exists.
func (s *Store) LoadState() (*stock.AppState, error) {
	var entry KVEntry
	err := s.db.Where("key = ?", s.config.Storage.StateKey).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state blob: %w", err)
	}
	return storage.UnmarshalState(entry.Value)
}

// SaveState replaces the stored state blob.
func (s *Store) SaveState(state *stock.AppState) error {
	blob, err := storage.MarshalState(state)
	if err != nil {
		return err
	}
	return s.upsert(s.config.Storage.StateKey, blob)
}

// Seeded reports whether the seed flag has been set.
func (s *Store) Seeded() (bool, error) {
	var count int64
	if err := s.db.Model(&KVEntry{}).Where("key = ?", s.config.Storage.SeedFlagKey).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to read seed flag: %w", err)
	}
	return count > 0, nil
}

// MarkSeeded sets the seed flag.
func (s *Store) MarkSeeded() error {
	return s.upsert(s.config.Storage.SeedFlagKey, []byte(storage.SeedFlagValue))
}

func (s *Store) upsert(key string, value []byte) error {
	entry := KVEntry{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
