// Package calc is the emission calculation engine.
//
// It converts everyday activities (driving, electricity use, meals,
// purchases, waste disposal) into kg CO2-equivalent by multiplying a
// quantity by a looked-up emission factor, after per-category unit
// normalization and adjustments.
//
// A Calculator is a pure, stateless-per-call component over an immutable
// factor table; concurrent calls are safe as long as the table is not
// mutated after construction.
package calc

// Result is the outcome of a single emission calculation.
//
// It is an immutable value: produced, optionally persisted, and discarded.
// Details records every input and derived value needed to reproduce CO2Kg,
// always including the emission factor actually applied.
type Result struct {
	// CO2Kg is the estimated emission in kg CO2-equivalent,
	// rounded to 3 decimals. Never negative for built-in factors.
	CO2Kg float64 `json:"co2_kg"`

	// Category is the top-level activity category
	// (transportation, energy, food, consumption, waste).
	Category string `json:"category"`

	// Subcategory is the second lookup level, e.g. "car" or "electricity".
	Subcategory string `json:"subcategory"`

	// Activity is a human-readable label, typically
	// "{subcategory}_{detail}" or the item name.
	Activity string `json:"activity"`

	// Details maps input and derived values for audit: raw amounts,
	// units, flags, and the emission factor applied. Informational
	// metadata only; never re-validated.
	Details map[string]any `json:"details"`
}
