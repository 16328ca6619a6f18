package tui

import (
	"github.com/javiermolinar/foldcal/internal/calendar"
	"github.com/javiermolinar/foldcal/internal/tui/view"
)

const helpText = "hjkl move · n/p month · t today · a add · y copy · wheel/J/K scroll · q quit"

// View renders the model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	p := m.params()
	headerLines := view.RenderHeader(view.HeaderViewState{
		Width:        m.width,
		Month:        m.grid.Month,
		Params:       p,
		FirstWeekday: m.cal.FirstWeekday(),
		Weekdays:     calendar.WeekdaySymbols(m.cal),
		Grid:         m.grid,
		RowLines:     m.rowLines(),
		Selected:     m.selection.Date(),
		Today:        m.today(),
		EventDays:    m.eventDays(),
		Styles:       m.styles.Header,
	})

	vp := m.content
	vp.Width = m.width
	vp.Height = m.contentHeight(p)
	vp.SetYOffset(m.contentOffset())

	return view.Render(view.ViewState{
		Width:   m.width,
		Height:  m.height,
		Header:  headerLines,
		Content: vp.View(),
		Footer:  m.renderFooter(),
		Bg:      m.styles.Bg(),
	})
}

func (m Model) renderFooter() string {
	state := view.FooterViewState{
		Width:         m.width,
		Help:          helpText,
		Status:        m.statusMsg,
		StatusIsError: m.statusError,
		Styles:        m.styles.Footer,
	}
	if m.mode == ModePrompt {
		state.ShowPrompt = true
		state.Prompt = m.styles.PromptLabel.Render(" "+m.selection.Date().Format("Mon Jan 2")+" › ") + m.prompt.View()
	}
	return view.RenderFooter(state)
}
