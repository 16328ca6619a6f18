// Package tui provides the terminal user interface for foldcal.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/foldcal/internal/agenda"
	"github.com/javiermolinar/foldcal/internal/calendar"
	"github.com/javiermolinar/foldcal/internal/config"
	"github.com/javiermolinar/foldcal/internal/header"
	"github.com/javiermolinar/foldcal/internal/tui/commands"
	"github.com/javiermolinar/foldcal/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Quick-add prompt is open
)

func modeString(m Mode) string {
	switch m {
	case ModePrompt:
		return "prompt"
	default:
		return "normal"
	}
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   agenda.Repository
	config *config.Config
	cal    *calendar.Gregorian

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Calendar state
	builder     *calendar.GridBuilder
	selection   *calendar.Selection
	grid        calendar.Grid
	headerStyle header.Style

	// Agenda state
	entries     map[string][]*agenda.Entry
	loading     bool
	content     viewport.Model
	contentRows int            // Lines of agenda content
	cardOffsets map[string]int // First content line of each day card

	mode   Mode
	prompt textinput.Model

	// Terminal dimensions and scroll
	width  int
	height int
	scroll int // Lines scrolled, header collapse included

	// Messages
	statusMsg   string
	statusError bool
	statusTime  time.Time

	nowFunc func() time.Time
	month   time.Time // Month to open instead of today's
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNow overrides the clock used for "today".
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.nowFunc = now
	}
}

// WithMonth opens the calendar on the month containing month.
func WithMonth(month time.Time) ModelOption {
	return func(m *Model) {
		m.month = month
	}
}

// New creates a new TUI model.
func New(repo agenda.Repository, cfg *config.Config, opts ...ModelOption) (*Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	loc, err := cfg.TimeLocation()
	if err != nil {
		return nil, fmt.Errorf("loading location: %w", err)
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "What's happening?"
	ti.CharLimit = agenda.MaxTitleLength
	ti.Prompt = ""
	ti.TextStyle = styles.PromptText
	ti.PlaceholderStyle = styles.PromptPlaceholder
	ti.Cursor.Style = styles.PromptCursor

	m := &Model{
		repo:        repo,
		config:      cfg,
		cal:         calendar.NewGregorian(cfg.FirstWeekday(), loc),
		theme:       t,
		styles:      styles,
		headerStyle: header.DefaultStyle(),
		entries:     map[string][]*agenda.Entry{},
		content:     viewport.New(0, 0),
		mode:        ModeNormal,
		prompt:      ti,
		nowFunc:     time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.builder = calendar.NewGridBuilder(m.cal)
	m.selection = calendar.NewSelection(m.cal, m.today())
	if !m.month.IsZero() {
		m.selection.SetMonth(m.month.In(loc))
	}
	m.selection.OnChange(func() {
		LogSelection(m.selection.Month(), m.selection.Date())
	})
	m.grid = m.builder.Build(m.selection.Month())
	m.loading = repo != nil
	m.refreshContent()

	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.loadMonth()
}

func (m Model) today() time.Time {
	return m.cal.Day(m.nowFunc())
}

func (m Model) rowLines() int {
	return max(m.config.UI.RowLines, 1)
}

// loadMonth fetches entries for every day the grid shows.
func (m Model) loadMonth() tea.Cmd {
	if len(m.grid.Cells) == 0 {
		return nil
	}
	start := m.grid.Cells[0].Date
	end := m.grid.Cells[len(m.grid.Cells)-1].Date
	return commands.LoadMonth(m.repo, m.grid.Month, start, end)
}

// syncMonth rebuilds the grid when the selection moved to another month.
func (m *Model) syncMonth() tea.Cmd {
	month := m.selection.Month()
	if month.Equal(m.grid.Month) {
		m.refreshContent()
		m.clampScroll()
		return nil
	}

	prev := m.grid.Month
	m.grid = m.builder.Build(month)
	LogMonthChange(prev, month, len(m.grid.Cells))

	m.entries = map[string][]*agenda.Entry{}
	m.loading = m.repo != nil
	m.scroll = 0
	m.refreshContent()
	return m.loadMonth()
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo agenda.Repository, cfg *config.Config, debug bool, opts ...ModelOption) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model, err := New(repo, cfg, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
