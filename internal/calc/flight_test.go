package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrace/carbontrack/internal/factors"
)

func TestClassifyFlightDistance(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		want       string
	}{
		{name: "short hop", distanceKm: 300, want: FlightDomesticShort},
		{name: "just below short boundary", distanceKm: 999.9, want: FlightDomesticShort},
		{name: "exactly at short boundary", distanceKm: 1000, want: FlightDomesticLong},
		{name: "medium haul", distanceKm: 2200, want: FlightDomesticLong},
		{name: "exactly at long boundary", distanceKm: 3000, want: FlightInternational},
		{name: "long haul", distanceKm: 9000, want: FlightInternational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFlightDistance(tt.distanceKm))
		})
	}
}

func TestFlight(t *testing.T) {
	calc := New(factors.Default())

	tests := []struct {
		name       string
		distanceKm float64
		wantCO2    float64
		wantClass  string
	}{
		{name: "short flight", distanceKm: 500, wantCO2: 127.5, wantClass: FlightDomesticShort},
		{name: "medium flight", distanceKm: 2000, wantCO2: 390.0, wantClass: FlightDomesticLong},
		{name: "international flight", distanceKm: 6000, wantCO2: 900.0, wantClass: FlightInternational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Flight(tt.distanceKm)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantCO2, result.CO2Kg, 1e-9)
			assert.Equal(t, "flight", result.Subcategory)
			assert.Equal(t, "flight_"+tt.wantClass, result.Activity)
			// Flight factors are per-passenger averages: no division.
			assert.Equal(t, 1, result.Details["passengers"])
		})
	}
}
