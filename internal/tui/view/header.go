package view

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/foldcal/internal/calendar"
	"github.com/javiermolinar/foldcal/internal/header"
)

// NavLabel is the month navigation cluster drawn at the end of the title.
const NavLabel = " ‹  › "

// Header line positions.
const (
	TitleLineIndex   = 0
	WeekdayLineIndex = 2
	GridTopLine      = 3
)

// HeaderStyles holds the styles used to draw the calendar header.
type HeaderStyles struct {
	Title      lipgloss.Style
	Year       lipgloss.Style
	Nav        lipgloss.Style
	Weekday    lipgloss.Style
	Weekend    lipgloss.Style
	Day        lipgloss.Style
	OtherMonth lipgloss.Style
	Selected   lipgloss.Style
	Today      lipgloss.Style
	Event      lipgloss.Style
	Separator  lipgloss.Style
	Bg         lipgloss.Color
}

// HeaderViewState contains everything needed to draw one header frame.
type HeaderViewState struct {
	Width        int
	Month        time.Time
	Params       header.Params
	FirstWeekday time.Weekday
	Weekdays     []string // Symbols ordered from FirstWeekday
	Grid         calendar.Grid
	RowLines     int
	Selected     time.Time
	Today        time.Time
	EventDays    map[string]bool
	Styles       HeaderStyles
}

// CellWidth returns the width of one grid column.
func CellWidth(width int) int {
	return max(3, width/7)
}

// RenderHeader draws the title, weekday row, visible grid window and the
// separator, one string per terminal line.
func RenderHeader(s HeaderViewState) []string {
	lines := []string{
		TitleLine(s),
		Fill(s.Width, s.Styles.Bg),
		WeekdayLine(s),
	}
	lines = append(lines, GridWindow(s)...)
	lines = append(lines, s.Styles.Separator.Render(strings.Repeat("─", max(s.Width, 0))))
	return lines
}

// TitleLine draws the month name, year and navigation cluster. The title
// tracking, year gap and navigation position follow the frame parameters.
func TitleLine(s HeaderViewState) string {
	tracking := max(int(math.Round(s.Params.TitleSize))-1, 0)
	gap := 1 + int(math.Round(s.Params.YearOffset))

	left := Fill(1, s.Styles.Bg) +
		s.Styles.Title.Render(Track(strings.ToUpper(s.Month.Format("January")), tracking)) +
		Fill(gap, s.Styles.Bg) +
		s.Styles.Year.Render(s.Month.Format("2006"))

	navCol := NavColumn(s.Width, s.Params.NavOffset)
	line := left + Fill(max(navCol-lipgloss.Width(left), 1), s.Styles.Bg) + s.Styles.Nav.Render(NavLabel)
	return ClipLine(line, s.Width)
}

// NavColumn returns the column where the navigation cluster starts.
func NavColumn(width int, navOffset float64) int {
	return width - lipgloss.Width(NavLabel) + int(math.Round(navOffset))
}

// NavHit maps a click on the title line to a month step: -1 for the previous
// arrow, +1 for the next arrow, 0 elsewhere.
func NavHit(x, width int, navOffset float64) int {
	start := NavColumn(width, navOffset)
	navW := lipgloss.Width(NavLabel)
	if x < start || x >= start+navW || x >= width {
		return 0
	}
	if x-start < navW/2 {
		return -1
	}
	return 1
}

// WeekendColumns marks the grid columns holding Saturday and Sunday.
func WeekendColumns(first time.Weekday) [7]bool {
	var cols [7]bool
	for i := range cols {
		wd := time.Weekday((int(first) + i) % 7)
		cols[i] = wd == time.Saturday || wd == time.Sunday
	}
	return cols
}

// WeekdayLine draws the weekday symbols centered over the grid columns.
func WeekdayLine(s HeaderViewState) string {
	cw := CellWidth(s.Width)
	weekend := WeekendColumns(s.FirstWeekday)
	var b strings.Builder
	for i, sym := range s.Weekdays {
		style := s.Styles.Weekday
		if i < len(weekend) && weekend[i] {
			style = s.Styles.Weekend
		}
		b.WriteString(style.Width(cw).Align(lipgloss.Center).Render(sym))
	}
	return ClipLine(b.String(), s.Width)
}

// GridLines draws every week row of the grid, RowLines lines per row.
func GridLines(s HeaderViewState) []string {
	rows := s.Grid.Rows()
	rl := max(s.RowLines, 1)
	cw := CellWidth(s.Width)
	weekend := WeekendColumns(s.FirstWeekday)

	lines := make([]string, 0, rows*rl)
	for r := 0; r < rows; r++ {
		var labels, marks strings.Builder
		for col, cell := range s.Grid.Row(r) {
			style := s.cellStyle(cell, weekend[col])
			hasEvent := s.EventDays[cell.Date.Format("2006-01-02")]

			text := cell.Label
			if rl == 1 {
				mark := " "
				if hasEvent {
					mark = "•"
				}
				text = " " + text + mark
			}
			labels.WriteString(style.Width(cw).Align(lipgloss.Center).Render(text))

			mark := " "
			if hasEvent {
				mark = "•"
			}
			marks.WriteString(s.Styles.Event.Width(cw).Align(lipgloss.Center).Render(mark))
		}
		lines = append(lines, ClipLine(labels.String(), s.Width))
		for extra := 1; extra < rl; extra++ {
			if extra == 1 {
				lines = append(lines, ClipLine(marks.String(), s.Width))
				continue
			}
			lines = append(lines, Fill(s.Width, s.Styles.Bg))
		}
	}
	return lines
}

// GridWindow returns the grid lines visible in this frame: GridHeight lines
// starting GridOffset lines into the grid.
func GridWindow(s HeaderViewState) []string {
	all := GridLines(s)
	top := min(max(int(math.Round(s.Params.GridOffset)), 0), len(all))
	height := min(max(int(math.Round(s.Params.GridHeight)), 0), len(all)-top)
	return all[top : top+height]
}

func (s HeaderViewState) cellStyle(cell calendar.DayCell, weekend bool) lipgloss.Style {
	switch {
	case calendar.IsSelected(cell, s.Selected):
		return s.Styles.Selected
	case calendar.SameDay(cell.Date, s.Today):
		return s.Styles.Today
	case cell.OtherMonth:
		return s.Styles.OtherMonth
	case weekend:
		return s.Styles.Weekend
	default:
		return s.Styles.Day
	}
}
