package cli

import (
	"github.com/spf13/cobra"
)

// newTransportCmd creates the "transport" subcommand.
func newTransportCmd(a *app) *cobra.Command {
	var (
		transportType string
		fuelType      string
		distanceKm    float64
		passengers    int
	)

	cmd := &cobra.Command{
		Use:   "transport",
		Short: "Estimate emissions for a trip",
		Long: `Estimate CO2 emissions for a trip by car, motorcycle, public transport,
or other modes. Factors are per vehicle-km, so the result is divided
across passengers.`,
		Example: `  carbontrack transport --type car --fuel petrol --distance 100 --passengers 2
  carbontrack transport --type public_transport --fuel train --distance 42`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.calculator.Transportation(transportType, fuelType, distanceKm, passengers)
			if err != nil {
				return err
			}
			return a.emit(cmd, result)
		},
	}

	cmd.Flags().StringVar(&transportType, "type", "", "transport type (car, motorcycle, public_transport, flight, other)")
	cmd.Flags().StringVar(&fuelType, "fuel", "", "fuel type or mode key (petrol, diesel, bus, train, ...)")
	cmd.Flags().Float64Var(&distanceKm, "distance", 0, "distance travelled in km")
	cmd.Flags().IntVar(&passengers, "passengers", 1, "number of passengers sharing the trip")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("fuel")
	_ = cmd.MarkFlagRequired("distance")

	return cmd
}
