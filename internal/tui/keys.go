package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/foldcal/internal/dateutil"
	"github.com/javiermolinar/foldcal/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := max(m.contentHeight(m.params())/2, 1)

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Day selection
	case "h", "left":
		return m.moveSelection(-1)
	case "l", "right":
		return m.moveSelection(1)
	case "k", "up":
		return m.moveSelection(-7)
	case "j", "down":
		return m.moveSelection(7)
	case "t":
		m.selection.SelectAndShow(m.today())
		return m, m.syncMonth()

	// Month navigation
	case "n", "]":
		m.selection.NextMonth()
		return m, m.syncMonth()
	case "p", "[":
		m.selection.PrevMonth()
		return m, m.syncMonth()

	// Scrolling
	case "J":
		m.scrollBy(1)
	case "K":
		m.scrollBy(-1)
	case "ctrl+d", "pgdown":
		m.scrollBy(page)
	case "ctrl+u", "pgup":
		m.scrollBy(-page)
	case "g", "home":
		m.scrollBy(-m.scroll)
	case "G", "end":
		m.scrollBy(m.maxScroll() - m.scroll)
	case "enter":
		m.scrollToCard(m.selectedKey())

	// Actions
	case "a":
		LogModeChange(m.mode, ModePrompt, "quick add")
		m.mode = ModePrompt
		m.prompt.Reset()
		return m, m.prompt.Focus()
	case "y":
		return m, commands.CopyDate(m.selection.Date(), dateutil.DateLayout)
	}

	return m, nil
}

// moveSelection moves the selected date by days, following it into the
// neighbouring month when it leaves the displayed one.
func (m Model) moveSelection(days int) (tea.Model, tea.Cmd) {
	m.selection.SelectAndShow(m.cal.AddDays(m.selection.Date(), days))
	return m, m.syncMonth()
}

// handlePromptKeys handles keys while the quick-add prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt("cancel")
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.prompt.Value())
		m.closePrompt("submit")
		if title == "" {
			return m, nil
		}
		return m, commands.AddEntry(m.repo, m.selection.Date(), title)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt(reason string) {
	LogModeChange(m.mode, ModeNormal, reason)
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.Reset()
}
