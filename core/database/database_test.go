package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("sqlite opens a store file", func(t *testing.T) {
		cfg := Config{
			Driver: DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "inventory.db"),
		}

		db, err := Connect(cfg)
		require.NoError(t, err)
		require.NotNil(t, db)
		assert.NoError(t, Close(db))
	})

	t.Run("unsupported driver is rejected", func(t *testing.T) {
		db, err := Connect(Config{Driver: "postgres"})
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("mysql connection failure surfaces", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "inventory",
			TimeoutSeconds: 1,
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestCloseNil(t *testing.T) {
	assert.NoError(t, Close(nil))
}

func TestIsLocked(t *testing.T) {
	assert.True(t, IsLocked(ErrStoreLocked))
	assert.True(t, IsLocked(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.False(t, IsLocked(nil))
	assert.False(t, IsLocked(errors.New("no such table: items")))
}
