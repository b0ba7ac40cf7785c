package cli

import (
	"fmt"

	"github.com/alexanderramin/gesta/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your character sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Players.Status(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(view))

			reachable := app.LLM != nil && app.LLM.Available(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGeneratorState(app.LLM != nil, reachable))
			return nil
		},
	}
}

func newUnlocksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unlocks",
		Short: "List level rewards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Players.Status(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatUnlocks(app.Rules.Unlocks(), view.Level))
			return nil
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent completions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.Players.History(cmd.Context(), days)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(log, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "How far back to look")
	return cmd
}
