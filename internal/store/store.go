// Package store implements the settings store keeping the greeting name suffix.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dakotalock/holy-grail-app-1750546242/internal/config"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/db/models"
)

const (
	// SuffixKey is the only settings key used by the application.
	SuffixKey = "name_suffix"

	// DefaultSuffix is the fallback suffix if none was configured.
	DefaultSuffix = "World"

	keyQueryPattern = "key = ?"
)

// Store is the settings store. Every operation opens its own connection
// against the configured SQLite file and releases it before returning, so
// nothing is shared across requests.
type Store struct {
	cfg config.Store
}

// New creates a Store from an explicit configuration.
func New(cfg config.Store) *Store {
	return &Store{cfg: cfg}
}

// defaultSuffix returns the configured default or the built-in fallback.
func (s *Store) defaultSuffix() string {
	if s.cfg.DefaultSuffix != "" {
		return s.cfg.DefaultSuffix
	}

	return DefaultSuffix
}

// open opens a fresh connection to the SQLite database file.
func (s *Store) open() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(s.cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, s.cfg.Path, err)
	}

	return db, nil
}

// release closes the underlying connection of a gorm handle.
func release(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("can't resolve sql.DB for release")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("can't close settings store connection")
	}
}

// Initialize makes sure the storage location, the settings table and the
// name suffix row exist. It runs before every request and must stay
// idempotent: a second call never creates a duplicate row or changes a
// stored value.
func (s *Store) Initialize() error {
	if dir := filepath.Dir(s.cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w: create storage directory %s: %v", ErrStorageUnavailable, dir, err)
		}
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer release(db)

	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}

	var setting models.Setting

	result := db.Where(keyQueryPattern, SuffixKey).First(&setting)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		seed := models.Setting{Key: SuffixKey, Value: s.defaultSuffix()}
		if err := db.Create(&seed).Error; err != nil {
			return fmt.Errorf("%w: seed default suffix: %v", ErrData, err)
		}

		log.Debug().Str("value", seed.Value).Msg("seeded default name suffix")

		return nil
	}

	if result.Error != nil {
		return fmt.Errorf("%w: check name suffix row: %v", ErrData, result.Error)
	}

	return nil
}

// GetSuffix returns the stored name suffix. A missing row falls back to the
// configured default; Initialize guarantees the row exists, so the fallback
// is defensive only.
func (s *Store) GetSuffix() (string, error) {
	db, err := s.open()
	if err != nil {
		return "", err
	}
	defer release(db)

	var setting models.Setting

	result := db.Where(keyQueryPattern, SuffixKey).First(&setting)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return s.defaultSuffix(), nil
	}

	if result.Error != nil {
		return "", fmt.Errorf("%w: read name suffix: %v", ErrData, result.Error)
	}

	return setting.Value, nil
}

// SetSuffix overwrites the value of the name suffix row. A zero row count
// means the row vanished after Initialize, which violates the store
// invariant and is reported as ErrSuffixNotFound.
func (s *Store) SetSuffix(value string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer release(db)

	result := db.Model(&models.Setting{}).
		Where(keyQueryPattern, SuffixKey).
		Update("value", value)
	if result.Error != nil {
		return fmt.Errorf("%w: update name suffix: %v", ErrData, result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrSuffixNotFound
	}

	return nil
}
