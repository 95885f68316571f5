package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS range_presets (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		period     TEXT,
		start_at   TEXT,
		end_at     TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		CHECK (period IS NOT NULL OR (start_at IS NOT NULL AND end_at IS NOT NULL))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_range_presets_name ON range_presets(name)`,
}
