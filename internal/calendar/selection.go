package calendar

import "time"

// Selection holds the displayed month and the selected day.
// It changes only through its setters, each of which fires the change
// callback when the state actually moves.
type Selection struct {
	cal      Calendar
	month    time.Time
	date     time.Time
	onChange func()
}

// NewSelection selects date and displays its month.
func NewSelection(cal Calendar, date time.Time) *Selection {
	day := cal.AddDays(date, 0)
	return &Selection{
		cal:   cal,
		month: cal.StartOfMonth(day),
		date:  day,
	}
}

// OnChange registers fn to run after every change. It replaces any
// previously registered callback.
func (s *Selection) OnChange(fn func()) {
	s.onChange = fn
}

// Month returns the first day of the displayed month.
func (s *Selection) Month() time.Time {
	return s.month
}

// Date returns the selected day.
func (s *Selection) Date() time.Time {
	return s.date
}

// NextMonth displays the following month. The selected day is kept.
func (s *Selection) NextMonth() {
	s.ShiftMonth(1)
}

// PrevMonth displays the preceding month. The selected day is kept.
func (s *Selection) PrevMonth() {
	s.ShiftMonth(-1)
}

// ShiftMonth moves the displayed month by n calendar months.
func (s *Selection) ShiftMonth(n int) {
	if n == 0 {
		return
	}
	s.month = s.cal.AddMonths(s.month, n)
	s.changed()
}

// SetMonth displays the month containing month.
func (s *Selection) SetMonth(month time.Time) {
	first := s.cal.StartOfMonth(month)
	if first.Equal(s.month) {
		return
	}
	s.month = first
	s.changed()
}

// Select replaces the selected day. The displayed month is not changed.
func (s *Selection) Select(date time.Time) {
	s.date = s.cal.AddDays(date, 0)
	s.changed()
}

// SelectAndShow selects date and displays its month.
func (s *Selection) SelectAndShow(date time.Time) {
	s.date = s.cal.AddDays(date, 0)
	s.month = s.cal.StartOfMonth(s.date)
	s.changed()
}

// IsSelected reports whether cell shows the selected day.
func (s *Selection) IsSelected(cell DayCell) bool {
	return IsSelected(cell, s.date)
}

// InMonth reports whether the selected day lies in the displayed month.
func (s *Selection) InMonth() bool {
	return SameDay(s.cal.StartOfMonth(s.date), s.month)
}

func (s *Selection) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
