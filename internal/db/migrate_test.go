package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var name string
	err = database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'range_presets'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "range_presets", name)
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already migrated; a second pass must not fail.
	assert.NoError(t, Migrate(database))
}

func TestOpenDB_EnforcesSelectionCheck(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO range_presets
		(id, name, period, start_at, end_at, created_at, updated_at)
		VALUES ('x', 'empty', NULL, NULL, NULL, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err)
}
