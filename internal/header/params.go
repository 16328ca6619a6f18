package header

// Style holds the end points of the header animation.
type Style struct {
	TitleMax  float64 // Title size when expanded
	TitleMin  float64 // Title size when collapsed
	YearShift float64 // Horizontal travel of the year label
	NavShift  float64 // Horizontal travel of the navigation buttons
}

// DefaultStyle returns the terminal header animation: the title loses its
// letter tracking, the year slides next to the month and the navigation
// buttons leave the right edge.
func DefaultStyle() Style {
	return Style{
		TitleMax:  3,
		TitleMin:  1,
		YearShift: 4,
		NavShift:  8,
	}
}

// Params are the visual parameters for one frame.
type Params struct {
	Progress   float64
	TitleSize  float64
	YearOffset float64 // Rightward shift of the year label
	NavOffset  float64 // Rightward shift of the navigation buttons
	GridHeight float64 // Visible height of the day grid
	GridOffset float64 // Upward shift of the day grid
}

// Interpolate derives the frame parameters from m. weekIndex is the
// zero-based grid row holding the selected date (see calendar.Grid.WeekIndex);
// shifting the grid by that row keeps the selected week visible once the
// header has collapsed.
func Interpolate(m Metrics, s Style, weekIndex float64) Params {
	p := m.Progress()
	full := float64(max(m.Rows, 0)) * m.RowHeight
	single := min(m.RowHeight, full)

	return Params{
		Progress:   p,
		TitleSize:  Lerp(s.TitleMax, s.TitleMin, p),
		YearOffset: s.YearShift * p,
		NavOffset:  s.NavShift * p,
		GridHeight: Lerp(full, single, p),
		GridOffset: weekIndex * m.RowHeight * p,
	}
}
