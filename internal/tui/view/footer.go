package view

import (
	"github.com/charmbracelet/lipgloss"
)

// FooterStyles holds the styles for the bottom line.
type FooterStyles struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
	Bg     lipgloss.Color
}

// FooterViewState contains the bottom line content.
type FooterViewState struct {
	Width         int
	Help          string
	Status        string
	StatusIsError bool
	Prompt        string
	ShowPrompt    bool
	Styles        FooterStyles
}

// RenderFooter draws the status, help or prompt line.
func RenderFooter(s FooterViewState) string {
	var line string
	switch {
	case s.ShowPrompt:
		line = s.Styles.Prompt.Render(s.Prompt)
	case s.Status != "" && s.StatusIsError:
		line = s.Styles.Error.Render(" " + s.Status)
	case s.Status != "":
		line = s.Styles.Status.Render(" " + s.Status)
	default:
		line = s.Styles.Help.Render(" " + s.Help)
	}
	line = ClipLine(line, s.Width)
	return PadLinesWithBackground(line, s.Width, 1, s.Styles.Bg)
}
