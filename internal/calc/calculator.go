package calc

import (
	"fmt"
	"math"

	"github.com/ecotrace/carbontrack/internal/factors"
)

// LocalFoodFactor is the emission factor multiplier applied when food is
// locally sourced (roughly 15% lower transport emissions).
const LocalFoodFactor = 0.85

// Calculator computes CO2-equivalent emissions for everyday activities
// against an emission factor table fixed at construction.
type Calculator struct {
	factors factors.Table
}

// New creates a Calculator over the given factor table.
// The table must not be mutated after this call.
func New(table factors.Table) *Calculator {
	return &Calculator{factors: table}
}

// Transportation calculates emissions for a trip.
//
// The factor is looked up as transportation[transportType][fuelType] and is
// in kg CO2 per km per vehicle, so the total is divided across passengers.
// passengers must be >= 1; zero would otherwise divide the trip away (or
// worse), so it is rejected with ErrInvalidArgument.
func (c *Calculator) Transportation(transportType, fuelType string, distanceKm float64, passengers int) (Result, error) {
	if passengers < 1 {
		return Result{}, fmt.Errorf("%w: passengers must be >= 1, got %d", ErrInvalidArgument, passengers)
	}

	factor, ok := c.factors.Transportation.Factor(transportType, fuelType)
	if !ok {
		return Result{}, fmt.Errorf("%w: transportation.%s.%s", ErrUnknownFactor, transportType, fuelType)
	}

	return Result{
		CO2Kg:       round3(factor * distanceKm / float64(passengers)),
		Category:    "transportation",
		Subcategory: transportType,
		Activity:    transportType + "_" + fuelType,
		Details: map[string]any{
			"distance_km":     distanceKm,
			"fuel_type":       fuelType,
			"passengers":      passengers,
			"emission_factor": factor,
		},
	}, nil
}

// Energy calculates emissions for energy consumption.
//
// amount is normalized to kWh first: "mwh" multiplies by 1000, "kwh"/"kw"
// pass through, any other unit fails with ErrInvalidArgument. Details
// records the converted amount alongside the original unit string.
func (c *Calculator) Energy(energyType, source string, amount float64, unit string) (Result, error) {
	factor, ok := c.factors.Energy.Factor(energyType, source)
	if !ok {
		return Result{}, fmt.Errorf("%w: energy.%s.%s", ErrUnknownFactor, energyType, source)
	}

	kwh, err := normalizeEnergyAmount(amount, unit)
	if err != nil {
		return Result{}, err
	}

	return Result{
		CO2Kg:       round3(factor * kwh),
		Category:    "energy",
		Subcategory: energyType,
		Activity:    energyType + "_" + source,
		Details: map[string]any{
			"amount":          kwh,
			"unit":            unit,
			"source":          source,
			"emission_factor": factor,
		},
	}, nil
}

// Food calculates emissions for food consumption.
//
// amount is normalized to kg ("g" divides by 1000, "servings" applies a
// per-item serving weight, anything else passes through as kg). When local
// is true the factor is discounted by LocalFoodFactor before multiplying,
// and the discounted factor is what Details records.
func (c *Calculator) Food(foodType, foodItem string, amount float64, unit string, local bool) (Result, error) {
	factor, ok := c.factors.Food.Factor(foodType, foodItem)
	if !ok {
		return Result{}, fmt.Errorf("%w: food.%s.%s", ErrUnknownFactor, foodType, foodItem)
	}

	kg := normalizeFoodAmount(amount, unit, foodItem)

	if local {
		factor *= LocalFoodFactor
	}

	return Result{
		CO2Kg:       round3(factor * kg),
		Category:    "food",
		Subcategory: foodType,
		Activity:    foodItem,
		Details: map[string]any{
			"amount":          kg,
			"unit":            unit,
			"local":           local,
			"emission_factor": factor,
		},
	}, nil
}

// Consumption calculates embodied emissions for purchased goods.
//
// lifetimeYears, when non-nil, amortizes the one-time embodied emissions
// across years of use by dividing the factor; a zero or negative lifetime
// fails with ErrInvalidArgument. quantity must be non-negative. Details
// records the post-amortization factor.
func (c *Calculator) Consumption(itemType, item string, quantity int, lifetimeYears *float64) (Result, error) {
	if quantity < 0 {
		return Result{}, fmt.Errorf("%w: quantity must be >= 0, got %d", ErrInvalidArgument, quantity)
	}
	if lifetimeYears != nil && *lifetimeYears <= 0 {
		return Result{}, fmt.Errorf("%w: lifetime_years must be > 0, got %v", ErrInvalidArgument, *lifetimeYears)
	}

	factor, ok := c.factors.Consumption.Factor(itemType, item)
	if !ok {
		return Result{}, fmt.Errorf("%w: consumption.%s.%s", ErrUnknownFactor, itemType, item)
	}

	details := map[string]any{
		"quantity":        quantity,
		"lifetime_years":  nil,
		"emission_factor": factor,
	}
	if lifetimeYears != nil {
		factor /= *lifetimeYears
		details["lifetime_years"] = *lifetimeYears
		details["emission_factor"] = factor
	}

	return Result{
		CO2Kg:       round3(factor * float64(quantity)),
		Category:    "consumption",
		Subcategory: itemType,
		Activity:    item,
		Details:     details,
	}, nil
}

// Waste calculates emissions for waste disposal. The waste namespace is
// flat: the factor is looked up by disposal method alone.
func (c *Calculator) Waste(disposalMethod string, amountKg float64) (Result, error) {
	factor, ok := c.factors.Waste.Factor(disposalMethod)
	if !ok {
		return Result{}, fmt.Errorf("%w: waste.%s", ErrUnknownFactor, disposalMethod)
	}

	return Result{
		CO2Kg:       round3(factor * amountKg),
		Category:    "waste",
		Subcategory: disposalMethod,
		Activity:    disposalMethod,
		Details: map[string]any{
			"amount_kg":       amountKg,
			"disposal_method": disposalMethod,
			"emission_factor": factor,
		},
	}, nil
}

// CategoryFactors returns the raw factor mapping for a category,
// or nil if the category is unknown.
func (c *Calculator) CategoryFactors(category string) map[string]map[string]float64 {
	return c.factors.Category(category)
}

// round3 rounds to 3 decimal places, the precision of every Result.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
