package tui

import (
	"math"

	"github.com/javiermolinar/foldcal/internal/agenda"
	"github.com/javiermolinar/foldcal/internal/calendar"
	"github.com/javiermolinar/foldcal/internal/header"
	"github.com/javiermolinar/foldcal/internal/tui/view"
)

// Header chrome in terminal lines. The padding covers the blank line under
// the title and the separator under the grid.
const (
	titleHeight   = 1
	weekdayHeight = 1
	headerPadding = 2
	footerHeight  = 1
)

// metrics describes the header for the current frame. The header rests at
// the top, so scrolling the content by n lines moves its minY to -n.
func (m Model) metrics() header.Metrics {
	return header.Metrics{
		ScrollOffset:  -float64(m.scroll),
		TitleHeight:   titleHeight,
		WeekdayHeight: weekdayHeight,
		Padding:       headerPadding,
		RowHeight:     float64(m.rowLines()),
		Rows:          m.grid.Rows(),
	}
}

// params returns the interpolated header parameters for the current frame.
func (m Model) params() header.Params {
	return header.Interpolate(m.metrics(), m.headerStyle, m.grid.WeekIndex(m.selection.Date()))
}

// extraLines is the scroll distance consumed by collapsing the header.
func (m Model) extraLines() int {
	return int(math.Round(m.metrics().ExtraHeight()))
}

// headerLines returns the rendered header height for p.
func (m Model) headerLines(p header.Params) int {
	return titleHeight + weekdayHeight + headerPadding + int(math.Round(p.GridHeight))
}

// contentHeight returns the viewport height left under a header drawn with p.
func (m Model) contentHeight(p header.Params) int {
	return max(m.height-footerHeight-m.headerLines(p), 0)
}

// maxScroll is the collapse distance plus whatever content overflows the
// space left under the collapsed header.
func (m Model) maxScroll() int {
	collapsed := int(math.Round(m.metrics().CollapsedHeight()))
	visible := max(m.height-footerHeight-collapsed, 0)
	return m.extraLines() + max(m.contentRows-visible, 0)
}

// contentOffset is the viewport offset once the header is fully collapsed.
func (m Model) contentOffset() int {
	return max(m.scroll-m.extraLines(), 0)
}

func (m *Model) clampScroll() {
	m.scroll = min(max(m.scroll, 0), m.maxScroll())
}

func (m *Model) scrollBy(n int) {
	before := m.scroll
	m.scroll += n
	m.clampScroll()
	if m.scroll != before {
		LogScroll(m.scroll, m.maxScroll(), m.params().Progress)
	}
}

// scrollToCard scrolls so the card of date sits at the top of the content.
// The header is collapsed first.
func (m *Model) scrollToCard(date string) {
	offset, ok := m.cardOffsets[date]
	if !ok {
		return
	}
	m.scroll = m.extraLines() + offset
	m.clampScroll()
	LogScroll(m.scroll, m.maxScroll(), m.params().Progress)
}

// refreshContent redraws the agenda list into the viewport.
func (m *Model) refreshContent() {
	content, rows, offsets := view.RenderAgenda(m.agendaState())
	m.content.SetContent(content)
	m.contentRows = rows
	m.cardOffsets = offsets
}

func (m Model) agendaState() view.AgendaViewState {
	return view.AgendaViewState{
		Width:    m.width,
		Days:     m.grid.MonthDays(),
		Entries:  m.entries,
		Loading:  m.loading,
		Selected: m.selection.Date(),
		Today:    m.today(),
		Styles:   m.styles.Agenda,
	}
}

// cellAt maps a terminal position to the grid cell drawn there.
func (m Model) cellAt(x, y int) (calendar.DayCell, bool) {
	p := m.params()
	visible := int(math.Round(p.GridHeight))
	if y < view.GridTopLine || y >= view.GridTopLine+visible || x < 0 {
		return calendar.DayCell{}, false
	}

	col := x / view.CellWidth(m.width)
	if col > 6 {
		return calendar.DayCell{}, false
	}
	line := y - view.GridTopLine + int(math.Round(p.GridOffset))
	row := m.grid.Row(line / m.rowLines())
	if row == nil {
		return calendar.DayCell{}, false
	}
	return row[col], true
}

// eventDays marks the days that have at least one entry.
func (m Model) eventDays() map[string]bool {
	days := make(map[string]bool, len(m.entries))
	for key, entries := range m.entries {
		if len(entries) > 0 {
			days[key] = true
		}
	}
	return days
}

// selectedKey returns the day key of the selected date.
func (m Model) selectedKey() string {
	return agenda.DayKey(m.selection.Date())
}
