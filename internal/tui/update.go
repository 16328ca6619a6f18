package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/foldcal/internal/agenda"
	"github.com/javiermolinar/foldcal/internal/tui/commands"
	"github.com/javiermolinar/foldcal/internal/tui/view"
)

// Lines scrolled per mouse wheel notch.
const wheelStep = 1

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.Width = max(m.width-24, 10)
		m.refreshContent()
		m.clampScroll()
		return m, nil

	case commands.MonthLoadedMsg:
		stale := !msg.Month.Equal(m.grid.Month)
		LogMonthLoaded(msg.Month, len(msg.Entries), stale)
		if stale {
			return m, nil
		}
		m.entries = agenda.ByDay(msg.Entries)
		m.loading = false
		m.refreshContent()
		m.clampScroll()
		return m, nil

	case commands.EntryAddedMsg:
		m.statusMsg = fmt.Sprintf("Added %q on %s", msg.Entry.Title, msg.Entry.Date.Format("Mon Jan 2"))
		m.statusError = false
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Batch(m.loadMonth(), clearStatusAfter(3*time.Second))

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.loading = false
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusError = true
		m.statusTime = time.Now().Add(5 * time.Second)
		m.refreshContent()
		return m, clearStatusAfter(5 * time.Second)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusError = false
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, clearStatusAfter(3 * time.Second)

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusError = false
		}
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

// handleMouseMsg scrolls on the wheel and selects on left clicks.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelStep)
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || m.mode == ModePrompt {
			return m, nil
		}
	default:
		return m, nil
	}

	if msg.Y == view.TitleLineIndex {
		switch view.NavHit(msg.X, m.width, m.params().NavOffset) {
		case -1:
			LogMouse(msg, "prev_month")
			m.selection.PrevMonth()
			return m, m.syncMonth()
		case 1:
			LogMouse(msg, "next_month")
			m.selection.NextMonth()
			return m, m.syncMonth()
		}
		return m, nil
	}

	if cell, ok := m.cellAt(msg.X, msg.Y); ok {
		LogMouse(msg, "select")
		m.selection.Select(cell.Date)
		return m, m.syncMonth()
	}
	return m, nil
}
