package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/foldcal/internal/tui/theme"
	"github.com/javiermolinar/foldcal/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	Header view.HeaderStyles
	Agenda view.AgendaStyles
	Footer view.FooterStyles

	// Quick-add prompt
	PromptLabel       lipgloss.Style
	PromptText        lipgloss.Style
	PromptPlaceholder lipgloss.Style
	PromptCursor      lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)

	s := &Styles{palette: p}

	s.Header = view.HeaderStyles{
		Title:      base.Foreground(p.Accent).Bold(true),
		Year:       base.Foreground(p.FgMuted),
		Nav:        base.Foreground(p.Accent),
		Weekday:    base.Foreground(p.FgMuted),
		Weekend:    base.Foreground(p.Weekend),
		Day:        base,
		OtherMonth: base.Foreground(p.OtherMonthFg),
		Selected:   lipgloss.NewStyle().Background(p.BgSelection).Foreground(p.TextOnSelection).Bold(true),
		Today:      base.Foreground(p.Today).Bold(true),
		Event:      base.Foreground(p.Event),
		Separator:  base.Foreground(p.BgHighlight),
		Bg:         p.Bg,
	}

	s.Agenda = view.AgendaStyles{
		Day:         lipgloss.NewStyle().Background(p.CardBg).Foreground(p.Fg).Bold(true),
		DaySelected: lipgloss.NewStyle().Background(p.CardActiveBg).Foreground(p.TextOnAccent).Bold(true),
		DayToday:    lipgloss.NewStyle().Background(p.CardBg).Foreground(p.Today).Bold(true),
		Entry:       base,
		Placeholder: base.Foreground(p.FgMuted).Italic(true),
		Bg:          p.Bg,
	}

	s.Footer = view.FooterStyles{
		Help:   base.Foreground(p.FgMuted),
		Status: base.Foreground(p.Accent),
		Error:  base.Foreground(p.Warning).Bold(true),
		Prompt: base,
		Bg:     p.Bg,
	}

	s.PromptLabel = base.Foreground(p.Accent).Bold(true)
	s.PromptText = base
	s.PromptPlaceholder = base.Foreground(p.FgMuted)
	s.PromptCursor = lipgloss.NewStyle().Foreground(p.Accent)

	return s
}

// Bg returns the base background color.
func (s *Styles) Bg() lipgloss.Color {
	return s.palette.Bg
}
