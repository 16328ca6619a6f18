package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/foldcal/internal/agenda"
)

type fakeRepo struct {
	entriesByRange func(start, end time.Time) ([]*agenda.Entry, error)
	created        []*agenda.Entry
	createErr      error
}

func (f *fakeRepo) CreateEntry(ctx context.Context, e *agenda.Entry) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = int64(len(f.created) + 1)
	f.created = append(f.created, e)
	return nil
}

func (f *fakeRepo) ListEntriesByDateRange(ctx context.Context, start, end time.Time) ([]*agenda.Entry, error) {
	if f.entriesByRange == nil {
		return nil, errors.New("not implemented")
	}
	return f.entriesByRange(start, end)
}

func (f *fakeRepo) DeleteEntry(ctx context.Context, id int64) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) Close() error {
	return nil
}

func TestLoadMonth(t *testing.T) {
	month := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	start := month
	end := time.Date(2024, time.February, 4, 0, 0, 0, 0, time.UTC)

	var gotStart, gotEnd time.Time
	repo := &fakeRepo{
		entriesByRange: func(s, e time.Time) ([]*agenda.Entry, error) {
			gotStart, gotEnd = s, e
			return []*agenda.Entry{{ID: 1, Date: month, Title: "Standup"}}, nil
		},
	}

	msg := LoadMonth(repo, month, start, end)()
	loaded, ok := msg.(MonthLoadedMsg)
	if !ok {
		t.Fatalf("expected MonthLoadedMsg, got %T", msg)
	}
	if !loaded.Month.Equal(month) {
		t.Errorf("Month = %v, want %v", loaded.Month, month)
	}
	if len(loaded.Entries) != 1 || loaded.Entries[0].Title != "Standup" {
		t.Errorf("Entries = %v", loaded.Entries)
	}
	if !gotStart.Equal(start) || !gotEnd.Equal(end) {
		t.Errorf("range = %v..%v, want %v..%v", gotStart, gotEnd, start, end)
	}
}

func TestLoadMonthNilRepo(t *testing.T) {
	month := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	msg := LoadMonth(nil, month, month, month)()
	loaded, ok := msg.(MonthLoadedMsg)
	if !ok {
		t.Fatalf("expected MonthLoadedMsg, got %T", msg)
	}
	if len(loaded.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(loaded.Entries))
	}
}

func TestLoadMonthError(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakeRepo{
		entriesByRange: func(start, end time.Time) ([]*agenda.Entry, error) {
			return nil, boom
		},
	}
	month := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	msg := LoadMonth(repo, month, month, month)()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("expected ErrMsg, got %T", msg)
	}
	if !errors.Is(errMsg.Err, boom) {
		t.Errorf("expected wrapped boom, got %v", errMsg.Err)
	}
}

func TestAddEntry(t *testing.T) {
	date := time.Date(2024, time.January, 17, 15, 30, 0, 0, time.UTC)

	t.Run("stores entry", func(t *testing.T) {
		repo := &fakeRepo{}
		msg := AddEntry(repo, date, "  Dentist  ")()
		added, ok := msg.(EntryAddedMsg)
		if !ok {
			t.Fatalf("expected EntryAddedMsg, got %T", msg)
		}
		if added.Entry.Title != "Dentist" {
			t.Errorf("Title = %q, want Dentist", added.Entry.Title)
		}
		if added.Entry.ID != 1 || len(repo.created) != 1 {
			t.Errorf("expected one stored entry, got %d", len(repo.created))
		}
	})

	t.Run("empty title", func(t *testing.T) {
		repo := &fakeRepo{}
		msg := AddEntry(repo, date, "   ")()
		errMsg, ok := msg.(ErrMsg)
		if !ok {
			t.Fatalf("expected ErrMsg, got %T", msg)
		}
		if !errors.Is(errMsg.Err, agenda.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", errMsg.Err)
		}
		if len(repo.created) != 0 {
			t.Error("expected nothing stored")
		}
	})

	t.Run("repository error", func(t *testing.T) {
		boom := errors.New("disk full")
		repo := &fakeRepo{createErr: boom}
		msg := AddEntry(repo, date, "Dentist")()
		errMsg, ok := msg.(ErrMsg)
		if !ok {
			t.Fatalf("expected ErrMsg, got %T", msg)
		}
		if !errors.Is(errMsg.Err, boom) {
			t.Errorf("expected wrapped error, got %v", errMsg.Err)
		}
	})

	t.Run("nil repository", func(t *testing.T) {
		if _, ok := AddEntry(nil, date, "Dentist")().(ErrMsg); !ok {
			t.Error("expected ErrMsg for nil repository")
		}
	})
}

func TestCopyDate(t *testing.T) {
	date := time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC)

	// Headless machines have no clipboard, so either outcome is valid.
	switch msg := CopyDate(date, "2006-01-02")().(type) {
	case StatusMsgCmd:
		if msg.Msg != "Copied 2024-01-17" {
			t.Errorf("status = %q, want %q", msg.Msg, "Copied 2024-01-17")
		}
	case ErrMsg:
		if msg.Err == nil {
			t.Error("ErrMsg without error")
		}
	default:
		t.Fatalf("CopyDate returned %T", msg)
	}
}
