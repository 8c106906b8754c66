package cli

import (
	"github.com/spf13/cobra"
)

// newEnergyCmd creates the "energy" subcommand.
func newEnergyCmd(a *app) *cobra.Command {
	var (
		energyType string
		source     string
		amount     float64
		unit       string
	)

	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Estimate emissions for energy consumption",
		Long: `Estimate CO2 emissions for electricity, heating, or cooling.
Amounts are in kWh; pass --unit mwh to enter megawatt-hours.`,
		Example: `  carbontrack energy --type electricity --source grid_average --amount 250
  carbontrack energy --type heating --source natural_gas --amount 1.2 --unit mwh`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.calculator.Energy(energyType, source, amount, unit)
			if err != nil {
				return err
			}
			return a.emit(cmd, result)
		},
	}

	cmd.Flags().StringVar(&energyType, "type", "", "energy type (electricity, heating, cooling)")
	cmd.Flags().StringVar(&source, "source", "", "energy source (grid_average, renewable, natural_gas, ...)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount of energy consumed")
	cmd.Flags().StringVar(&unit, "unit", "kwh", "energy unit (kwh, mwh)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
