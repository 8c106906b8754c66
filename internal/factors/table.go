// Package factors provides the emission factor table and its loader.
//
// Factors are stored as a nested JSON document on disk. Transportation,
// energy, food, and consumption use three levels (category -> subcategory ->
// key -> factor); waste is flat (category -> key -> factor). The table is
// loaded once at startup and treated as read-only afterwards, which keeps
// concurrent calculations safe without locking.
package factors

// Nested maps subcategory -> key -> emission factor.
type Nested map[string]map[string]float64

// Flat maps key -> emission factor directly, with no subcategory level.
type Flat map[string]float64

// Factor returns the emission factor for a subcategory/key pair.
// The boolean reports whether both levels were present.
func (n Nested) Factor(subcategory, key string) (float64, bool) {
	group, ok := n[subcategory]
	if !ok {
		return 0, false
	}
	factor, ok := group[key]
	return factor, ok
}

// Factor returns the emission factor for a key in a flat namespace.
func (f Flat) Factor(key string) (float64, bool) {
	factor, ok := f[key]
	return factor, ok
}

// Table holds emission factors for every supported activity category.
//
// Units per category:
//   - Transportation: kg CO2 per km per vehicle
//   - Energy: kg CO2 per kWh
//   - Food: kg CO2 per kg (per liter for milk)
//   - Consumption: kg CO2 per item (embodied, lifetime-amortizable)
//   - Waste: kg CO2 per kg
type Table struct {
	Transportation Nested `json:"transportation"`
	Energy         Nested `json:"energy"`
	Food           Nested `json:"food"`
	Consumption    Nested `json:"consumption"`
	Waste          Flat   `json:"waste"`
}

// Category returns the raw factor mapping for a named category, or nil if
// the category is unknown. Waste is returned as a single-level map wrapped
// to match the nested shape of the other categories.
func (t Table) Category(name string) map[string]map[string]float64 {
	switch name {
	case "transportation":
		return t.Transportation
	case "energy":
		return t.Energy
	case "food":
		return t.Food
	case "consumption":
		return t.Consumption
	case "waste":
		return map[string]map[string]float64{"waste": t.Waste}
	default:
		return nil
	}
}
