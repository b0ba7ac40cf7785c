package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/gesta/internal/cli/formatter"
	"github.com/alexanderramin/gesta/internal/importer"
	"github.com/spf13/cobra"
)

func newConflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts <report.json|->",
		Short: "Show a scheduling-conflict report",
		Long:  `Renders the JSON report written by the scheduling-conflict detector. Pass - to read it from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening conflict report: %w", err)
				}
				defer f.Close()
				in = f
			}

			report, err := importer.ReadConflictReport(in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatConflicts(report))
			return nil
		},
	}
}
