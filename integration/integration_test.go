package integration

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/foldcal/internal/agenda"
	"github.com/javiermolinar/foldcal/internal/calendar"
	"github.com/javiermolinar/foldcal/internal/db"
	"github.com/javiermolinar/foldcal/internal/tui/commands"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// mustParseDate parses a date string or fails the test.
func mustParseDate(t *testing.T, s string, loc *time.Location) time.Time {
	t.Helper()
	date, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", s, err)
	}
	return date
}

// createEntry is a helper to create and insert an entry.
func createEntry(t *testing.T, repo *db.SQLite, date time.Time, title string) *agenda.Entry {
	t.Helper()
	e, err := agenda.New(date, title, time.Now())
	if err != nil {
		t.Fatalf("failed to build entry: %v", err)
	}
	if err := repo.CreateEntry(context.Background(), e); err != nil {
		t.Fatalf("failed to insert entry: %v", err)
	}
	return e
}

func TestGridRangeIncludesPaddingDays(t *testing.T) {
	repo := openRepo(t)
	cal := calendar.NewGregorian(time.Monday, time.UTC)
	grid := calendar.BuildGrid(cal, mustParseDate(t, "2024-02-01", time.UTC))

	// February 2024 runs Thursday to Thursday: Jan 29-31 lead, Mar 1-3 trail.
	createEntry(t, repo, mustParseDate(t, "2024-01-29", time.UTC), "Leading")
	createEntry(t, repo, mustParseDate(t, "2024-02-14", time.UTC), "Inside")
	createEntry(t, repo, mustParseDate(t, "2024-03-03", time.UTC), "Trailing")
	createEntry(t, repo, mustParseDate(t, "2024-03-04", time.UTC), "Outside")

	first := grid.Cells[0].Date
	last := grid.Cells[len(grid.Cells)-1].Date
	msg := commands.LoadMonth(repo, grid.Month, first, last)()
	loaded, ok := msg.(commands.MonthLoadedMsg)
	if !ok {
		t.Fatalf("expected MonthLoadedMsg, got %#v", msg)
	}

	if len(loaded.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(loaded.Entries))
	}
	byDay := agenda.ByDay(loaded.Entries)
	for _, cell := range grid.Cells {
		entries := byDay[agenda.DayKey(cell.Date)]
		switch agenda.DayKey(cell.Date) {
		case "2024-01-29", "2024-02-14", "2024-03-03":
			if len(entries) != 1 {
				t.Errorf("%s: entries = %d, want 1", agenda.DayKey(cell.Date), len(entries))
			}
		default:
			if len(entries) != 0 {
				t.Errorf("%s: unexpected entries %v", agenda.DayKey(cell.Date), entries)
			}
		}
	}
}

func TestQuickAddRoundTrip(t *testing.T) {
	repo := openRepo(t)
	date := mustParseDate(t, "2024-01-17", time.UTC)

	msg := commands.AddEntry(repo, date, "Dentist")()
	added, ok := msg.(commands.EntryAddedMsg)
	if !ok {
		t.Fatalf("expected EntryAddedMsg, got %#v", msg)
	}
	if added.Entry.ID == 0 {
		t.Error("expected entry ID to be set after insert")
	}

	entries, err := repo.ListEntriesByDateRange(context.Background(), date, date)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Dentist" {
		t.Fatalf("entries = %v", entries)
	}

	if err := repo.DeleteEntry(context.Background(), added.Entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteEntry(context.Background(), added.Entry.ID); !errors.Is(err, agenda.ErrEntryNotFound) {
		t.Errorf("second delete = %v, want ErrEntryNotFound", err)
	}
}

func TestEntriesSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "foldcal.db")

	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	date := mustParseDate(t, "2024-03-10", time.UTC)
	e, err := agenda.New(date, "Persisted", time.Now())
	if err != nil {
		t.Fatalf("new entry: %v", err)
	}
	if err := repo.CreateEntry(context.Background(), e); err != nil {
		t.Fatalf("create: %v", err)
	}
	_ = repo.Close()

	repo, err = db.New(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = repo.Close() }()

	entries, err := repo.ListEntriesByDateRange(context.Background(), date, date)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Persisted" {
		t.Errorf("entries after reopen = %v", entries)
	}
}
