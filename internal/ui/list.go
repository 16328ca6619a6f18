package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/foldcal/internal/agenda"
	"github.com/javiermolinar/foldcal/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "list [YYYY-MM]",
		Short: "List the agenda of a month",
		Long: `List all agenda entries of a month, grouped by day.

Without an argument the current month is listed.`,
		Example: `  foldcal list
  foldcal list 2024-01
  foldcal list prev
  foldcal list --markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			today, err := a.today()
			if err != nil {
				return err
			}
			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			month, err := dateutil.ParseMonth(arg, today)
			if err != nil {
				return err
			}

			entries, err := a.repo.ListEntriesByDateRange(context.Background(), month, month.AddDate(0, 1, -1))
			if err != nil {
				return fmt.Errorf("listing entries: %w", err)
			}

			if markdown {
				fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(agendaMarkdown(month, entries), termWidth()))
				return nil
			}
			printAgenda(cmd.OutOrStdout(), month, entries)
			return nil
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render the agenda as Markdown")

	return cmd
}

func printAgenda(w io.Writer, month time.Time, entries []*agenda.Entry) {
	if len(entries) == 0 {
		fmt.Fprintf(w, "No entries in %s.\n", month.Format("January 2006"))
		return
	}

	fmt.Fprintln(w, formatHeader(month.Format("January 2006")))

	var currentDay string
	for _, e := range entries {
		if key := e.DayKey(); key != currentDay {
			fmt.Fprintf(w, "\n=== %s ===\n", e.Date.Format("Mon Jan 02"))
			currentDay = key
		}
		fmt.Fprintf(w, "  %s %s\n", formatMuted(fmt.Sprintf("#%d", e.ID)), e.Title)
	}
}
