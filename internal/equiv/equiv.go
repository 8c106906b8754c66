// Package equiv converts abstract carbon footprint values (kg CO2e) into
// relatable real-world equivalencies like "miles driven" or "smartphones
// charged" using EPA-published conversion factors.
package equiv

import (
	"fmt"
	"math"
)

// EPA Formula Constants (2024 Edition)
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// Each constant is the kg CO2e per unit of the activity; the equivalency is
// kg_CO2e / factor.
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone full charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed per tree seedling grown
	// for 10 years.
	EPATreeSeedlingFactor = 60.0
)

// MinThresholdKg is the minimum kg CO2e for showing equivalencies.
// Below it the equivalencies become meaninglessly small.
const MinThresholdKg = 1.0

// Equivalency is a single real-world comparison for an emission value.
type Equivalency struct {
	// Value is the raw calculated equivalency value.
	Value float64 `json:"value"`

	// FormattedValue is the display-ready string with separators/scaling.
	FormattedValue string `json:"formatted_value"`

	// Label is the descriptive phrase (e.g., "miles driven").
	Label string `json:"label"`
}

// Output contains the equivalencies calculated for one emission value.
type Output struct {
	// InputKg is the emission value the equivalencies describe.
	InputKg float64 `json:"input_kg"`

	// Results contains the calculated equivalencies in display order.
	Results []Equivalency `json:"results"`

	// DisplayText is the full prose format for CLI output.
	// Example: "Equivalent to driving ~105 miles or charging ~2,457 smartphones"
	DisplayText string `json:"display_text"`

	// IsEmpty is true if the value was too small for meaningful
	// equivalencies.
	IsEmpty bool `json:"is_empty"`
}

// ForKg computes equivalencies for an emission value already in kg CO2e.
// Values below MinThresholdKg (or not finite) yield an empty Output.
func ForKg(kg float64) Output {
	if math.IsInf(kg, 0) || math.IsNaN(kg) || kg < MinThresholdKg {
		return Output{InputKg: kg, IsEmpty: true}
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor

	milesFormatted := formatValue(miles)
	phonesFormatted := formatValue(phones)

	return Output{
		InputKg: kg,
		Results: []Equivalency{
			{Value: miles, FormattedValue: milesFormatted, Label: "miles driven"},
			{Value: phones, FormattedValue: phonesFormatted, Label: "smartphones charged"},
		},
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			milesFormatted, phonesFormatted),
	}
}
