package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState holds the rendered regions of one frame.
type ViewState struct {
	Width   int
	Height  int
	Header  []string
	Content string
	Footer  string
	Bg      lipgloss.Color
}

// Render stacks header, content and footer and fills the screen.
func Render(s ViewState) string {
	if s.Width <= 0 || s.Height <= 0 {
		return "Loading..."
	}

	header := PadLinesWithBackground(strings.Join(s.Header, "\n"), s.Width, len(s.Header), s.Bg)
	contentHeight := max(s.Height-len(s.Header)-1, 0)

	parts := []string{header}
	if contentHeight > 0 {
		parts = append(parts, PlaceBox(s.Width, contentHeight, lipgloss.Top, s.Content, s.Bg))
	}
	parts = append(parts, s.Footer)

	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return PadLinesWithBackground(out, s.Width, s.Height, s.Bg)
}
