// Package calendar builds month grids and tracks the selected day.
package calendar

import (
	"errors"
	"time"
)

// ErrInvalidMonth is returned when a month falls outside the supported range.
var ErrInvalidMonth = errors.New("month out of supported range")

// Calendar supplies the date arithmetic a month grid needs.
// All returned dates are truncated to midnight.
type Calendar interface {
	// FirstWeekday is the weekday shown in the leftmost grid column.
	FirstWeekday() time.Weekday

	// StartOfMonth returns the first day of the month containing date.
	StartOfMonth(date time.Time) time.Time

	// DaysInMonth returns the number of days in the month containing month.
	DaysInMonth(month time.Time) (int, error)

	// WeekdayIndex returns the 1-based column of date, where 1 is FirstWeekday.
	WeekdayIndex(date time.Time) int

	// AddDays moves date by n calendar days.
	AddDays(date time.Time, n int) time.Time

	// AddMonths moves date by n calendar months, clamping the day to the
	// length of the target month.
	AddMonths(date time.Time, n int) time.Time
}

// Gregorian is the proleptic Gregorian calendar in a fixed location.
type Gregorian struct {
	firstWeekday time.Weekday
	loc          *time.Location
}

// NewGregorian returns a Gregorian calendar with the given first weekday.
// A nil location means time.Local.
func NewGregorian(first time.Weekday, loc *time.Location) *Gregorian {
	if loc == nil {
		loc = time.Local
	}
	if first < time.Sunday || first > time.Saturday {
		first = time.Monday
	}
	return &Gregorian{firstWeekday: first, loc: loc}
}

// FirstWeekday implements Calendar.
func (g *Gregorian) FirstWeekday() time.Weekday {
	return g.firstWeekday
}

// Location returns the location dates are expressed in.
func (g *Gregorian) Location() *time.Location {
	return g.loc
}

// Day truncates t to midnight in the calendar's location.
func (g *Gregorian) Day(t time.Time) time.Time {
	y, m, d := t.In(g.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, g.loc)
}

// StartOfMonth implements Calendar.
func (g *Gregorian) StartOfMonth(date time.Time) time.Time {
	y, m, _ := date.In(g.loc).Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, g.loc)
}

// DaysInMonth implements Calendar.
func (g *Gregorian) DaysInMonth(month time.Time) (int, error) {
	y, m, _ := month.In(g.loc).Date()
	if y < 1 || y > 9999 {
		return 0, ErrInvalidMonth
	}
	return time.Date(y, m+1, 0, 0, 0, 0, 0, g.loc).Day(), nil
}

// WeekdayIndex implements Calendar.
func (g *Gregorian) WeekdayIndex(date time.Time) int {
	wd := int(date.In(g.loc).Weekday())
	return (wd-int(g.firstWeekday)+7)%7 + 1
}

// AddDays implements Calendar.
func (g *Gregorian) AddDays(date time.Time, n int) time.Time {
	y, m, d := date.In(g.loc).Date()
	// Rebuilding from components keeps midnight across DST transitions.
	return time.Date(y, m, d+n, 0, 0, 0, 0, g.loc)
}

// AddMonths implements Calendar.
func (g *Gregorian) AddMonths(date time.Time, n int) time.Time {
	y, m, d := date.In(g.loc).Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, g.loc)
	last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, g.loc).Day()
	return time.Date(first.Year(), first.Month(), min(d, last), 0, 0, 0, 0, g.loc)
}

// WeekdaySymbols returns short weekday names ordered from the calendar's
// first weekday.
func WeekdaySymbols(cal Calendar) []string {
	symbols := make([]string, 7)
	first := int(cal.FirstWeekday())
	for i := range symbols {
		symbols[i] = time.Weekday((first + i) % 7).String()[:3]
	}
	return symbols
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
