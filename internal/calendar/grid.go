package calendar

import (
	"fmt"
	"time"
)

// DayCell is one entry of a month grid.
type DayCell struct {
	Label      string    // Day of month, zero-padded to two digits
	Date       time.Time // Midnight of the day
	OtherMonth bool      // True for padding days from adjacent months
}

func newDayCell(date time.Time, otherMonth bool) DayCell {
	return DayCell{
		Label:      fmt.Sprintf("%02d", date.Day()),
		Date:       date,
		OtherMonth: otherMonth,
	}
}

// Grid is a month laid out in complete weeks.
type Grid struct {
	Month time.Time // First day of the displayed month
	Cells []DayCell // Row-major, 7 cells per row
}

// Rows returns the number of week rows in the grid.
func (g Grid) Rows() int {
	return len(g.Cells) / 7
}

// Row returns the cells of week row i, or nil if out of range.
func (g Grid) Row(i int) []DayCell {
	if i < 0 || i >= g.Rows() {
		return nil
	}
	return g.Cells[i*7 : i*7+7]
}

// IndexOf returns the cell index holding date, or -1.
func (g Grid) IndexOf(date time.Time) int {
	for i, c := range g.Cells {
		if SameDay(c.Date, date) {
			return i
		}
	}
	return -1
}

// IsSelected reports whether cell shows the selected day. Padding cells
// from adjacent months are never selected.
func IsSelected(cell DayCell, selected time.Time) bool {
	return !cell.OtherMonth && SameDay(cell.Date, selected)
}

// SelectedIndex returns the index of the cell showing selected, or -1 when
// selected lies outside the displayed month.
func (g Grid) SelectedIndex(selected time.Time) int {
	for i, c := range g.Cells {
		if IsSelected(c, selected) {
			return i
		}
	}
	return -1
}

// WeekIndex returns the zero-based row of the selected day. A day outside
// the displayed month, padding days included, reports row 1.
func (g Grid) WeekIndex(selected time.Time) float64 {
	idx := g.SelectedIndex(selected)
	if idx < 0 {
		return 1
	}
	return float64(idx / 7)
}

// MonthDays returns the cells that belong to the displayed month.
func (g Grid) MonthDays() []DayCell {
	days := make([]DayCell, 0, len(g.Cells))
	for _, c := range g.Cells {
		if !c.OtherMonth {
			days = append(days, c)
		}
	}
	return days
}

// GridBuilder builds month grids against a fixed calendar.
type GridBuilder struct {
	cal Calendar
}

// NewGridBuilder returns a builder using cal.
func NewGridBuilder(cal Calendar) *GridBuilder {
	return &GridBuilder{cal: cal}
}

// Build returns the grid for the month containing month.
func (b *GridBuilder) Build(month time.Time) Grid {
	return BuildGrid(b.cal, month)
}

// BuildGrid lays out the month containing month in complete weeks. Leading
// cells from the previous month fill the first week; trailing cells from the
// next month are added only when the last day does not end a week.
// A month the calendar cannot measure yields an empty grid.
func BuildGrid(cal Calendar, month time.Time) Grid {
	first := cal.StartOfMonth(month)
	days, err := cal.DaysInMonth(first)
	if err != nil || days <= 0 {
		return Grid{Month: first}
	}

	leading := cal.WeekdayIndex(first) - 1
	cells := make([]DayCell, 0, 42)

	for i := leading; i > 0; i-- {
		cells = append(cells, newDayCell(cal.AddDays(first, -i), true))
	}
	for i := 0; i < days; i++ {
		cells = append(cells, newDayCell(cal.AddDays(first, i), false))
	}

	last := cal.AddDays(first, days-1)
	if trailing := 7 - cal.WeekdayIndex(last); trailing > 0 {
		for i := 1; i <= trailing; i++ {
			cells = append(cells, newDayCell(cal.AddDays(last, i), true))
		}
	}

	return Grid{Month: first, Cells: cells}
}
