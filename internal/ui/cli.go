// Package ui provides the foldcal command line.
package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/foldcal/internal/agenda"
	"github.com/javiermolinar/foldcal/internal/calendar"
	"github.com/javiermolinar/foldcal/internal/config"
	"github.com/javiermolinar/foldcal/internal/dateutil"
	"github.com/javiermolinar/foldcal/internal/db"
	"github.com/javiermolinar/foldcal/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   agenda.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool   // Enable debug logging
	month  string // Month to open the TUI on
	owned  bool   // repo was opened by the App
	now    func() time.Time
}

// NewApp creates a new CLI application. A nil repo is opened lazily from
// the configured database path.
func NewApp(repo agenda.Repository, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{repo: repo, config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "foldcal",
		Short: "A terminal calendar with a collapsing month header",
		Long: `foldcal shows a month calendar above your agenda.

Scrolling the agenda folds the month grid into the week of the
selected day; scrolling back unfolds it.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")
	a.root.Flags().StringVar(&a.month, "month", "", "Month to open (YYYY-MM, next, prev)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.monthCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.removeCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "foldcal %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) runTUI() error {
	var opts []tui.ModelOption
	if a.month != "" {
		today, err := a.today()
		if err != nil {
			return err
		}
		month, err := dateutil.ParseMonth(a.month, today)
		if err != nil {
			return fmt.Errorf("parsing --month: %w", err)
		}
		opts = append(opts, tui.WithMonth(month))
	}

	if err := a.ensureRepo(); err != nil {
		return err
	}
	return tui.RunWithDebug(a.repo, a.config, a.debug, opts...)
}

// ensureRepo opens the configured database unless a repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	a.owned = true
	return nil
}

// calendar builds the host calendar from the configuration.
func (a *App) calendar() (*calendar.Gregorian, error) {
	loc, err := a.config.TimeLocation()
	if err != nil {
		return nil, fmt.Errorf("loading location: %w", err)
	}
	return calendar.NewGregorian(a.config.FirstWeekday(), loc), nil
}

// today returns midnight of the current day in the configured location.
func (a *App) today() (time.Time, error) {
	cal, err := a.calendar()
	if err != nil {
		return time.Time{}, err
	}
	return cal.Day(a.now()), nil
}

// SetArgs overrides the command line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if the App opened it.
func (a *App) Close() error {
	if a.owned && a.repo != nil {
		return a.repo.Close()
	}
	return nil
}
