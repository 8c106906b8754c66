package cli

import (
	"github.com/spf13/cobra"

	"github.com/ecotrace/carbontrack/internal/tui"
)

// newHistoryCmd creates the "history" subcommand.
func newHistoryCmd(a *app) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously saved emission results",
		Example: `  carbontrack history
  carbontrack history --output json
  carbontrack history --tui`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.store.List(cmd.Context())
			if err != nil {
				return err
			}

			if interactive {
				return tui.RunHistory(records)
			}

			format, _ := cmd.Flags().GetString("output")
			return renderRecords(cmd.OutOrStdout(), records, format)
		},
	}

	cmd.Flags().BoolVar(&interactive, "tui", false, "browse the history interactively")

	return cmd
}
