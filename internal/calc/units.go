package calc

import (
	"fmt"
	"strings"
)

// Unit conversion constants.
const (
	// MWhToKWh converts megawatt-hours to kilowatt-hours.
	MWhToKWh = 1000.0

	// GramsToKg converts grams to kilograms.
	GramsToKg = 0.001
)

// Approximate serving weights in kilograms for the "servings" food unit.
// Items without an entry use DefaultServingWeightKg.
var servingWeightsKg = map[string]float64{
	"beef":    0.15,
	"chicken": 0.12,
	"milk":    0.25,
}

// DefaultServingWeightKg is the serving weight assumed for food items
// without a listed serving size.
const DefaultServingWeightKg = 0.1

// normalizeEnergyAmount converts an energy amount to kWh.
// Unit matching is case-insensitive: "mwh" multiplies by 1000,
// "kwh" and "kw" pass through. Any other unit is rejected.
func normalizeEnergyAmount(amount float64, unit string) (float64, error) {
	switch strings.ToLower(unit) {
	case "mwh":
		return amount * MWhToKWh, nil
	case "kwh", "kw":
		return amount, nil
	default:
		return 0, fmt.Errorf("%w: unsupported energy unit %q", ErrInvalidArgument, unit)
	}
}

// normalizeFoodAmount converts a food amount to kilograms.
// "g" divides by 1000 and "servings" multiplies by a per-item serving
// weight. Anything else, including "kg", passes through unchanged: unlike
// energy, unrecognized food units are treated as kg rather than rejected.
func normalizeFoodAmount(amount float64, unit, item string) float64 {
	switch strings.ToLower(unit) {
	case "g":
		return amount * GramsToKg
	case "servings":
		weight, ok := servingWeightsKg[item]
		if !ok {
			weight = DefaultServingWeightKg
		}
		return amount * weight
	default:
		return amount
	}
}
