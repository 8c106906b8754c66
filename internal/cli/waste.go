package cli

import (
	"github.com/spf13/cobra"
)

// newWasteCmd creates the "waste" subcommand.
func newWasteCmd(a *app) *cobra.Command {
	var (
		method   string
		amountKg float64
	)

	cmd := &cobra.Command{
		Use:     "waste",
		Short:   "Estimate emissions for waste disposal",
		Example: `  carbontrack waste --method landfill --amount 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.calculator.Waste(method, amountKg)
			if err != nil {
				return err
			}
			return a.emit(cmd, result)
		},
	}

	cmd.Flags().StringVar(&method, "method", "", "disposal method (landfill, recycling, composting, incineration)")
	cmd.Flags().Float64Var(&amountKg, "amount", 0, "waste amount in kg")
	_ = cmd.MarkFlagRequired("method")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
