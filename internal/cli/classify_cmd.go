package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gesta/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newClassifyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Show which stat a piece of text trains",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			stat, ok := app.Classifier.Detect(text)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScores(app.Classifier.Scores(text), stat, ok))
			return nil
		},
	}
}
