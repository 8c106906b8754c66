package cli

import (
	"github.com/spf13/cobra"
)

// newConsumptionCmd creates the "consumption" subcommand.
func newConsumptionCmd(a *app) *cobra.Command {
	var (
		itemType      string
		item          string
		quantity      int
		lifetimeYears float64
	)

	cmd := &cobra.Command{
		Use:   "consumption",
		Short: "Estimate embodied emissions for purchased goods",
		Long: `Estimate one-time embodied CO2 emissions for clothing, electronics,
or household goods. With --lifetime the emissions are amortized across
the years of expected use.`,
		Example: `  carbontrack consumption --type electronics --item smartphone
  carbontrack consumption --type electronics --item laptop --lifetime 4
  carbontrack consumption --type clothing --item jeans --quantity 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Only an explicitly set flag amortizes, so a spelled-out
			// zero is rejected instead of silently ignored.
			var lifetime *float64
			if cmd.Flags().Changed("lifetime") {
				lifetime = &lifetimeYears
			}

			result, err := a.calculator.Consumption(itemType, item, quantity, lifetime)
			if err != nil {
				return err
			}
			return a.emit(cmd, result)
		},
	}

	cmd.Flags().StringVar(&itemType, "type", "", "item type (clothing, electronics, household)")
	cmd.Flags().StringVar(&item, "item", "", "item (smartphone, jeans, furniture_item, ...)")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "number of items")
	cmd.Flags().Float64Var(&lifetimeYears, "lifetime", 0, "years of use to amortize emissions over")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}
