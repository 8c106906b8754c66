package calc

// Flight class breakpoints in kilometers.
const (
	// ShortHaulMaxKm is the exclusive upper bound for short domestic flights.
	ShortHaulMaxKm = 1000.0

	// LongHaulMaxKm is the exclusive upper bound for long domestic flights;
	// anything at or above it is classified international.
	LongHaulMaxKm = 3000.0
)

// Flight emission classes, keys into the transportation.flight factor group.
const (
	FlightDomesticShort = "domestic_short"
	FlightDomesticLong  = "domestic_long"
	FlightInternational = "international"
)

// ClassifyFlightDistance maps a flight distance to its emission class.
// Short flights emit more per km (takeoff dominates), so the per-km factor
// decreases as the class gets longer.
func ClassifyFlightDistance(distanceKm float64) string {
	switch {
	case distanceKm < ShortHaulMaxKm:
		return FlightDomesticShort
	case distanceKm < LongHaulMaxKm:
		return FlightDomesticLong
	default:
		return FlightInternational
	}
}

// Flight calculates emissions for a flight of the given distance, using the
// class derived from ClassifyFlightDistance. Flight factors are per-passenger
// averages already, so no passenger division is applied.
func (c *Calculator) Flight(distanceKm float64) (Result, error) {
	return c.Transportation("flight", ClassifyFlightDistance(distanceKm), distanceKm, 1)
}
