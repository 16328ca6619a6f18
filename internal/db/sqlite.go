// Package db provides SQLite storage for agenda entries.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/foldcal/internal/agenda"
	"github.com/javiermolinar/foldcal/internal/dateutil"
)

// SQLite implements agenda.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ agenda.Repository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
// The parent directory of path is created if needed.
func New(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// CreateEntry adds a new entry to the repository.
func (s *SQLite) CreateEntry(ctx context.Context, e *agenda.Entry) error {
	if e.Title == "" {
		return agenda.ErrEmptyTitle
	}

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (entry_date, title, created_at) VALUES (?, ?, ?)`,
		e.Date.Format(dateutil.DateLayout),
		e.Title,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id
	e.CreatedAt = createdAt

	return nil
}

// ListEntriesByDateRange returns entries between start and end inclusive.
func (s *SQLite) ListEntriesByDateRange(ctx context.Context, start, end time.Time) ([]*agenda.Entry, error) {
	query := `
		SELECT id, entry_date, title, created_at
		FROM entries
		WHERE entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date, created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query,
		start.Format(dateutil.DateLayout),
		end.Format(dateutil.DateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*agenda.Entry
	for rows.Next() {
		var (
			e         agenda.Entry
			entryDate string
			createdAt string
		)

		if err := rows.Scan(&e.ID, &entryDate, &e.Title, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		e.Date, err = parseDate(entryDate)
		if err != nil {
			return nil, fmt.Errorf("parsing entry date: %w", err)
		}

		e.CreatedAt, err = parseDate(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}

		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	return entries, nil
}

// DeleteEntry removes an entry by ID.
func (s *SQLite) DeleteEntry(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return agenda.ErrEntryNotFound
	}

	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func parseDate(s string) (time.Time, error) {
	// Date-only values are local midnight so they compare equal to
	// calendar days built from time.Now().
	if t, err := time.ParseInLocation(dateutil.DateLayout, s, time.Local); err == nil {
		return t, nil
	}

	// SQLite can hand DATE columns back as "2006-01-02T00:00:00Z".
	if len(s) == 20 && s[10] == 'T' && s[11:19] == "00:00:00" && s[19] == 'Z' {
		if t, err := time.ParseInLocation(dateutil.DateLayout, s[:10], time.Local); err == nil {
			return t, nil
		}
	}

	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
