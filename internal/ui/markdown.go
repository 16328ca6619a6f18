package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/fatih/color"

	"github.com/javiermolinar/foldcal/internal/agenda"
)

// agendaMarkdown formats a month agenda as a Markdown document.
func agendaMarkdown(month time.Time, entries []*agenda.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", month.Format("January 2006"))

	if len(entries) == 0 {
		b.WriteString("\n_No entries._\n")
		return b.String()
	}

	var currentDay string
	for _, e := range entries {
		if key := e.DayKey(); key != currentDay {
			fmt.Fprintf(&b, "\n## %s\n\n", e.Date.Format("Mon Jan 02"))
			currentDay = key
		}
		fmt.Fprintf(&b, "- %s `#%d`\n", e.Title, e.ID)
	}
	return b.String()
}

// renderMarkdown renders md for the terminal, falling back to the source
// when the renderer fails.
func renderMarkdown(md string, width int) string {
	style := styles.DarkStyle
	if color.NoColor {
		style = styles.NoTTYStyle
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}
