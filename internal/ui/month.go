package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/foldcal/internal/agenda"
	"github.com/javiermolinar/foldcal/internal/calendar"
	"github.com/javiermolinar/foldcal/internal/dateutil"
)

func (a *App) monthCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Print a month grid",
		Long: `Print the grid of a month, padded with days of the neighbouring
months so every week is complete. Days with agenda entries are marked
with a dot.`,
		Example: `  foldcal month
  foldcal month 2024-02
  foldcal month next`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			cal, err := a.calendar()
			if err != nil {
				return err
			}
			today := cal.Day(a.now())

			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			month, err := dateutil.ParseMonth(arg, today)
			if err != nil {
				return err
			}

			grid := calendar.BuildGrid(cal, month)
			if len(grid.Cells) == 0 {
				return fmt.Errorf("cannot lay out %s: %w", arg, calendar.ErrInvalidMonth)
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			entries, err := a.repo.ListEntriesByDateRange(context.Background(),
				grid.Cells[0].Date, grid.Cells[len(grid.Cells)-1].Date)
			if err != nil {
				return fmt.Errorf("listing entries: %w", err)
			}

			renderMonth(cmd.OutOrStdout(), monthView{
				Grid:         grid,
				FirstWeekday: cal.FirstWeekday(),
				Weekdays:     calendar.WeekdaySymbols(cal),
				Today:        today,
				Events:       agenda.ByDay(entries),
				Width:        termWidth(),
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

type monthView struct {
	Grid         calendar.Grid
	FirstWeekday time.Weekday
	Weekdays     []string
	Today        time.Time
	Events       map[string][]*agenda.Entry
	Width        int
}

// monthCellWidth fits seven columns in width, between 4 and 6 characters each.
func monthCellWidth(width int) int {
	return min(max((width-2)/7, 4), 6)
}

// renderMonth prints a titled grid. Padding is applied before coloring so
// escape codes do not skew the columns.
func renderMonth(w io.Writer, v monthView) {
	cw := monthCellWidth(v.Width)
	gridWidth := 7 * cw

	title := v.Grid.Month.Format("January 2006")
	pad := max((gridWidth-len(title))/2, 0)
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), formatHeader(title))

	var header strings.Builder
	header.WriteString("  ")
	for i, name := range v.Weekdays {
		wd := time.Weekday((int(v.FirstWeekday) + i) % 7)
		sym := fmt.Sprintf("%*s ", cw-1, name)
		if wd == time.Saturday || wd == time.Sunday {
			sym = formatWeekend(sym)
		}
		header.WriteString(sym)
	}
	fmt.Fprintln(w, header.String())

	days := 0
	for r := 0; r < v.Grid.Rows(); r++ {
		var line strings.Builder
		line.WriteString("  ")
		for col, cell := range v.Grid.Row(r) {
			wd := time.Weekday((int(v.FirstWeekday) + col) % 7)
			label := fmt.Sprintf("%*s", cw-1, cell.Label)
			switch {
			case cell.OtherMonth:
				label = formatMuted(label)
			case calendar.SameDay(cell.Date, v.Today):
				label = formatToday(label)
			case wd == time.Saturday || wd == time.Sunday:
				label = formatWeekend(label)
			}

			mark := " "
			if len(v.Events[cell.Date.Format(dateutil.DateLayout)]) > 0 {
				mark = formatEvent("•")
				if !cell.OtherMonth {
					days++
				}
			}
			line.WriteString(label + mark)
		}
		fmt.Fprintln(w, line.String())
	}

	if days > 0 {
		noun := "days"
		if days == 1 {
			noun = "day"
		}
		fmt.Fprintf(w, "\n  %s\n", formatMuted(fmt.Sprintf("%d %s with entries", days, noun)))
	}
}
