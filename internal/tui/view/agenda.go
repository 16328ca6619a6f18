package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/foldcal/internal/agenda"
	"github.com/javiermolinar/foldcal/internal/calendar"
)

// Placeholder is shown on day cards without entries.
const Placeholder = "nothing planned"

// AgendaStyles holds the styles used to draw the agenda list.
type AgendaStyles struct {
	Day         lipgloss.Style
	DaySelected lipgloss.Style
	DayToday    lipgloss.Style
	Entry       lipgloss.Style
	Placeholder lipgloss.Style
	Bg          lipgloss.Color
}

// AgendaViewState contains everything needed to draw the agenda list.
type AgendaViewState struct {
	Width    int
	Days     []calendar.DayCell
	Entries  map[string][]*agenda.Entry
	Loading  bool
	Selected time.Time
	Today    time.Time
	Styles   AgendaStyles
}

// AgendaLines draws one card per day and returns the lines together with the
// first line of each card keyed by agenda.DayKey.
func AgendaLines(s AgendaViewState) ([]string, map[string]int) {
	offsets := make(map[string]int, len(s.Days))
	lines := make([]string, 0, len(s.Days)*3)

	for _, cell := range s.Days {
		key := agenda.DayKey(cell.Date)
		offsets[key] = len(lines)

		title := fmt.Sprintf(" %s %s", cell.Date.Format("Mon"), cell.Label)
		style := s.Styles.Day
		switch {
		case calendar.IsSelected(cell, s.Selected):
			style = s.Styles.DaySelected
		case calendar.SameDay(cell.Date, s.Today):
			style = s.Styles.DayToday
		}
		if calendar.SameDay(cell.Date, s.Today) {
			title += "  today"
		}
		lines = append(lines, style.Width(s.Width).Render(title))

		entries := s.Entries[key]
		switch {
		case len(entries) > 0:
			for _, e := range entries {
				text := ansi.Truncate("   • "+e.Title, max(s.Width, 1), "…")
				lines = append(lines, s.Styles.Entry.Width(s.Width).Render(text))
			}
		case s.Loading:
			lines = append(lines, s.Styles.Placeholder.Width(s.Width).Render("   …"))
		default:
			lines = append(lines, s.Styles.Placeholder.Width(s.Width).Render("   "+Placeholder))
		}
		lines = append(lines, Fill(s.Width, s.Styles.Bg))
	}

	return lines, offsets
}

// RenderAgenda joins the agenda lines into viewport content.
func RenderAgenda(s AgendaViewState) (string, int, map[string]int) {
	lines, offsets := AgendaLines(s)
	return strings.Join(lines, "\n"), len(lines), offsets
}
