// Package agenda defines the entries listed under the calendar header.
package agenda

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/javiermolinar/foldcal/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrEntryNotFound = errors.New("entry not found")
)

// MaxTitleLength bounds entry titles, in runes.
const MaxTitleLength = 256

// Entry is a single agenda item on a calendar day.
type Entry struct {
	ID        int64
	Date      time.Time
	Title     string
	CreatedAt time.Time
}

// New creates an Entry on the day of date, trimming the title.
func New(date time.Time, title string, now time.Time) (*Entry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		title = string([]rune(title)[:MaxTitleLength])
	}
	return &Entry{
		Date:      dateutil.TruncateToDay(date),
		Title:     title,
		CreatedAt: now,
	}, nil
}

// DayKey returns the YYYY-MM-DD key of the entry's day.
func (e *Entry) DayKey() string {
	return DayKey(e.Date)
}

// DayKey formats t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Format(dateutil.DateLayout)
}

// ByDay groups entries by day key, keeping their order.
func ByDay(entries []*Entry) map[string][]*Entry {
	out := make(map[string][]*Entry)
	for _, e := range entries {
		key := e.DayKey()
		out[key] = append(out[key], e)
	}
	return out
}

// Repository defines the storage interface for agenda entries.
type Repository interface {
	// CreateEntry stores e and sets its ID.
	CreateEntry(ctx context.Context, e *Entry) error

	// ListEntriesByDateRange returns entries between start and end inclusive,
	// ordered by date and creation.
	ListEntriesByDateRange(ctx context.Context, start, end time.Time) ([]*Entry, error)

	// DeleteEntry removes an entry. Returns ErrEntryNotFound if it does not exist.
	DeleteEntry(ctx context.Context, id int64) error

	// Close releases any resources held by the repository.
	Close() error
}
