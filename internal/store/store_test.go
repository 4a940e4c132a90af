package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dakotalock/holy-grail-app-1750546242/internal/config"
	"github.com/dakotalock/holy-grail-app-1750546242/internal/db/models"
)

// newTestStore creates a store backed by a SQLite file in a temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	return New(config.Store{
		Path: filepath.Join(t.TempDir(), "settings.db"),
	})
}

// openRaw opens a direct connection to the store's database file for
// inspecting or mutating rows behind the store's back.
func openRaw(t *testing.T, s *Store) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(s.cfg.Path), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	return db
}

func TestInitializeIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Initialize())
	}

	db := openRaw(t, s)

	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Where("key = ?", SuffixKey).Count(&count).Error)
	assert.Equal(t, int64(1), count, "expected exactly one name suffix row")
}

func TestInitializeKeepsStoredValue(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Initialize())
	require.NoError(t, s.SetSuffix("Dakota"))

	// a later cold-start style re-initialization must not reset the value
	require.NoError(t, s.Initialize())

	suffix, err := s.GetSuffix()
	require.NoError(t, err)
	assert.Equal(t, "Dakota", suffix)
}

func TestInitializeFailsOnUnusableLocation(t *testing.T) {
	// the parent of the database file is itself a file, so the storage
	// directory can not be created
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))

	s := New(config.Store{Path: filepath.Join(blocker, "sub", "settings.db")})

	err := s.Initialize()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestGetSuffixDefault(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Initialize())

	suffix, err := s.GetSuffix()
	require.NoError(t, err)
	assert.Equal(t, DefaultSuffix, suffix)
}

func TestGetSuffixConfiguredDefault(t *testing.T) {
	s := New(config.Store{
		Path:          filepath.Join(t.TempDir(), "settings.db"),
		DefaultSuffix: "Universe",
	})

	require.NoError(t, s.Initialize())

	suffix, err := s.GetSuffix()
	require.NoError(t, err)
	assert.Equal(t, "Universe", suffix)
}

func TestSetSuffixThenGet(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Initialize())
	require.NoError(t, s.SetSuffix("Dakota"))

	suffix, err := s.GetSuffix()
	require.NoError(t, err)
	assert.Equal(t, "Dakota", suffix)
}

func TestSetSuffixMissingRow(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Initialize())

	// remove the row behind the store's back to violate the invariant
	db := openRaw(t, s)
	require.NoError(t, db.Where("key = ?", SuffixKey).Delete(&models.Setting{}).Error)

	err := s.SetSuffix("Ada")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSuffixNotFound)
}

func TestGetSuffixFallbackOnMissingRow(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Initialize())

	db := openRaw(t, s)
	require.NoError(t, db.Where("key = ?", SuffixKey).Delete(&models.Setting{}).Error)

	// the defensive fallback returns the default instead of an error
	suffix, err := s.GetSuffix()
	require.NoError(t, err)
	assert.Equal(t, DefaultSuffix, suffix)
}
