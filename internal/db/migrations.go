package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS selections (
			id          TEXT PRIMARY KEY,
			mode        TEXT NOT NULL CHECK(mode IN ('single', 'range')),
			start_date  TEXT NOT NULL,
			end_date    TEXT,
			label       TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_selections_created ON selections(created_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating selections table: %w", err)
	}

	return nil
}
