// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/foldcal/internal/agenda"
)

// MonthLoadedMsg is sent when the agenda entries of a month grid are loaded.
type MonthLoadedMsg struct {
	Month   time.Time
	Entries []*agenda.Entry
}

// EntryAddedMsg is sent when a quick-add entry has been stored.
type EntryAddedMsg struct {
	Entry *agenda.Entry
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadMonth loads the entries between start and end for month. A nil
// repository yields an empty month.
func LoadMonth(repo agenda.Repository, month, start, end time.Time) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return MonthLoadedMsg{Month: month}
		}

		entries, err := repo.ListEntriesByDateRange(context.Background(), start, end)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading %s: %w", month.Format("January 2006"), err)}
		}
		return MonthLoadedMsg{Month: month, Entries: entries}
	}
}

// AddEntry stores a new entry on date.
func AddEntry(repo agenda.Repository, date time.Time, title string) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: fmt.Errorf("no agenda storage configured")}
		}

		e, err := agenda.New(date, title, time.Now())
		if err != nil {
			return ErrMsg{Err: err}
		}
		if err := repo.CreateEntry(context.Background(), e); err != nil {
			return ErrMsg{Err: fmt.Errorf("adding entry: %w", err)}
		}
		return EntryAddedMsg{Entry: e}
	}
}

// CopyDate writes the date to the system clipboard.
func CopyDate(date time.Time, layout string) tea.Cmd {
	return func() tea.Msg {
		text := date.Format(layout)
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied " + text}
	}
}
