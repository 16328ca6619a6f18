package db

import "fmt"

// migrate creates the schema if it does not exist yet.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS entries (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			entry_date DATE NOT NULL,
			title      TEXT NOT NULL CHECK(length(title) > 0),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(entry_date);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating entries table: %w", err)
	}

	return nil
}
