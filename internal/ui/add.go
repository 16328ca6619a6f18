package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/foldcal/internal/agenda"
	"github.com/javiermolinar/foldcal/internal/dateutil"
)

func (a *App) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <date> <title>",
		Short: "Add an agenda entry",
		Long: `Add an entry to the agenda.

The date accepts today, tomorrow, yesterday, next-week, a weekday name
(next occurrence), next-<weekday> (same as the weekday name), or
YYYY-MM-DD. The remaining arguments form the title.`,
		Example: `  foldcal add today "Team lunch"
  foldcal add friday Dentist
  foldcal add 2024-01-17 Release review`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			today, err := a.today()
			if err != nil {
				return err
			}
			date, err := dateutil.ParseRelativeDate(args[0], today)
			if err != nil {
				return fmt.Errorf("parsing date %q: %w", args[0], err)
			}

			e, err := agenda.New(date, strings.Join(args[1:], " "), a.now())
			if err != nil {
				return err
			}
			if err := a.repo.CreateEntry(context.Background(), e); err != nil {
				return fmt.Errorf("creating entry: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d: %s on %s\n",
				formatStats("Added"),
				e.ID,
				e.Title,
				e.Date.Format("Mon Jan 02 2006"),
			)
			return nil
		},
	}
}
