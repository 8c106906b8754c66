package cli

import (
	"github.com/spf13/cobra"
)

// newFoodCmd creates the "food" subcommand.
func newFoodCmd(a *app) *cobra.Command {
	var (
		foodType string
		item     string
		amount   float64
		unit     string
		local    bool
	)

	cmd := &cobra.Command{
		Use:   "food",
		Short: "Estimate emissions for food consumption",
		Long: `Estimate CO2 emissions for food. Amounts are in kg by default;
"g" and "servings" are converted. Locally sourced food gets a 15%
factor reduction.`,
		Example: `  carbontrack food --type meat --item beef --amount 0.5
  carbontrack food --type meat --item beef --amount 2 --unit servings --local`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.calculator.Food(foodType, item, amount, unit, local)
			if err != nil {
				return err
			}
			return a.emit(cmd, result)
		},
	}

	cmd.Flags().StringVar(&foodType, "type", "", "food type (meat, dairy, seafood, plant_based, processed)")
	cmd.Flags().StringVar(&item, "item", "", "food item (beef, milk, rice, ...)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount consumed")
	cmd.Flags().StringVar(&unit, "unit", "kg", "amount unit (kg, g, servings)")
	cmd.Flags().BoolVar(&local, "local", false, "food is locally sourced")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
