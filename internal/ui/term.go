package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Month title and section headers
	colorHeader = color.New(color.Bold)

	// Today's date
	colorToday = color.New(color.FgCyan, color.Bold)

	// Weekend labels
	colorWeekend = color.New(color.FgMagenta)

	// Days with agenda entries
	colorEvent = color.New(color.FgYellow)

	// Confirmations
	colorStats = color.New(color.FgGreen)

	// Padding days and secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatToday(s string) string {
	return colorToday.Sprint(s)
}

func formatWeekend(s string) string {
	return colorWeekend.Sprint(s)
}

func formatEvent(s string) string {
	return colorEvent.Sprint(s)
}

func formatStats(s string) string {
	return colorStats.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
