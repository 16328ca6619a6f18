package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <entry-id>",
		Aliases: []string{"rm"},
		Short:   "Remove an agenda entry",
		Long: `Remove an agenda entry by its ID, as shown by list.

Example:
  foldcal remove 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry ID: %w", err)
			}

			if err := a.repo.DeleteEntry(context.Background(), id); err != nil {
				return fmt.Errorf("removing entry #%d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry #%d\n", id)
			return nil
		},
	}
}
