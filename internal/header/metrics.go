package header

// Metrics describes the header layout for one frame. Units are whatever the
// renderer measures in; the terminal UI uses lines and columns.
type Metrics struct {
	ScrollOffset  float64 // Offset from the resting position, negative once scrolled
	SafeAreaTop   float64 // Space reserved above the header
	TitleHeight   float64 // Title bar with month, year and navigation
	WeekdayHeight float64 // Weekday symbol row
	Padding       float64 // Vertical padding inside the header
	RowHeight     float64 // Height of one week row in the day grid
	Rows          int     // Week rows in the displayed month
}

func (m Metrics) chrome() float64 {
	return m.SafeAreaTop + m.TitleHeight + m.WeekdayHeight + m.Padding
}

// ExpandedHeight is the header height with every week row visible.
func (m Metrics) ExpandedHeight() float64 {
	return m.chrome() + float64(max(m.Rows, 0))*m.RowHeight
}

// CollapsedHeight is the header height showing a single week row.
func (m Metrics) CollapsedHeight() float64 {
	if m.Rows <= 0 {
		return m.chrome()
	}
	return m.chrome() + m.RowHeight
}

// ExtraHeight is the distance the content must scroll to fully collapse
// the header.
func (m Metrics) ExtraHeight() float64 {
	return m.ExpandedHeight() - m.CollapsedHeight()
}

// Progress maps the frame's scroll offset with Progress.
func (m Metrics) Progress() float64 {
	return Progress(m.ScrollOffset, m.CollapsedHeight(), m.ExtraHeight())
}
