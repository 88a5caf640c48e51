package store

import (
	"path/filepath"
	"testing"

	"fruitpie-jobboard/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB returns a freshly migrated SQLite database private to t.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}
