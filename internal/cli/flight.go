package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecotrace/carbontrack/internal/calc"
)

// newFlightCmd creates the "flight" subcommand.
//
// The distance is either given directly with --distance or resolved from
// place names through the configured distance provider. The resolved
// distance is then classified into a flight emission class
// (domestic_short, domestic_long, international) before lookup.
func newFlightCmd(a *app) *cobra.Command {
	var (
		origin      string
		destination string
		distanceKm  float64
	)

	cmd := &cobra.Command{
		Use:   "flight",
		Short: "Estimate emissions for a flight",
		Long: `Estimate CO2 emissions for a flight. Distances under 1000 km are
classified domestic_short, under 3000 km domestic_long, and anything
farther international. Flight factors already reflect per-passenger
averages, so no passenger division is applied.`,
		Example: `  carbontrack flight --from Berlin --to Madrid
  carbontrack flight --distance 2200`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("distance") {
				if origin == "" || destination == "" {
					return fmt.Errorf("either --distance or both --from and --to are required")
				}
				km, err := a.provider.Distance(cmd.Context(), origin, destination)
				if err != nil {
					return err
				}
				a.logger.Debug().
					Str("origin", origin).
					Str("destination", destination).
					Float64("distance_km", km).
					Msg("distance resolved")
				distanceKm = km
			}

			result, err := a.calculator.Flight(distanceKm)
			if err != nil {
				return err
			}
			if origin != "" {
				result.Details["origin"] = origin
				result.Details["destination"] = destination
			}
			cmd.Printf("Flight class: %s (%s km)\n",
				calc.ClassifyFlightDistance(distanceKm), formatKm(distanceKm))

			return a.emit(cmd, result)
		},
	}

	cmd.Flags().StringVar(&origin, "from", "", "origin place name")
	cmd.Flags().StringVar(&destination, "to", "", "destination place name")
	cmd.Flags().Float64Var(&distanceKm, "distance", 0, "flight distance in km (skips the distance lookup)")

	return cmd
}
