package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.db")

	conn, err := OpenAndMigrate(path)
	require.NoError(t, err)
	require.NoError(t, Migrate(conn))

	var applied int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM _migrations`).Scan(&applied))
	assert.Equal(t, 3, applied)

	for _, table := range []string{"users", "games", "daily_results"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		assert.NoError(t, err, table)
	}
	require.NoError(t, conn.Close())

	// Reopening an existing database applies nothing new.
	conn, err = OpenAndMigrate(path)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM _migrations`).Scan(&applied))
	assert.Equal(t, 3, applied)
}
