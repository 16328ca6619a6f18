// Package dateutil provides date, month and weekday parsing.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Layouts used across the CLI, storage and the TUI.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Parse errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonthFormat = errors.New("month must be in YYYY-MM format")
	ErrInvalidWeekday     = errors.New("invalid weekday name")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ParseWeekday parses a full or three-letter weekday name, case-insensitive.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if wd, ok := weekdayMap[name]; ok {
		return wd, nil
	}
	if len(name) == 3 {
		for full, wd := range weekdayMap {
			if strings.HasPrefix(full, name) {
				return wd, nil
			}
		}
	}
	return time.Sunday, ErrInvalidWeekday
}

// ParseMonth parses a YYYY-MM string into the first day of that month in
// the location of relativeTo. Empty input or "this" returns the month of
// relativeTo; "next" and "prev" step one month.
func ParseMonth(s string, relativeTo time.Time) (time.Time, error) {
	current := StartOfMonth(relativeTo)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "this":
		return current, nil
	case "next":
		return current.AddDate(0, 1, 0), nil
	case "prev", "previous", "last":
		return current.AddDate(0, -1, 0), nil
	}

	t, err := time.ParseInLocation(MonthLayout, strings.TrimSpace(s), relativeTo.Location())
	if err != nil {
		return time.Time{}, ErrInvalidMonthFormat
	}
	return t, nil
}

// ParseRelativeDate parses a date string that can be:
//   - Empty string or "today": returns relativeTo date
//   - Keywords: "tomorrow", "yesterday"
//   - Weekday names: "monday" through "sunday" (next occurrence, always future)
//   - Next prefixed: "next-monday" through "next-sunday" are aliases of the
//     bare weekday names; "next-week" is the same weekday seven days on
//   - Absolute date: "2025-01-15" (YYYY-MM-DD), past dates included
//
// All inputs are case-insensitive. The result is midnight in relativeTo's
// location.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "next-week":
		return today.AddDate(0, 0, 7), nil
	}

	if name, ok := strings.CutPrefix(input, "next-"); ok {
		if _, known := weekdayMap[name]; !known {
			return time.Time{}, ErrInvalidDateFormat
		}
		input = name
	}

	if target, ok := weekdayMap[input]; ok {
		return nextWeekday(today, target), nil
	}

	result, err := time.ParseInLocation(DateLayout, input, relativeTo.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := int(target) - int(today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}
