package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrace/carbontrack/internal/calc"
	"github.com/ecotrace/carbontrack/internal/store"
)

func TestFormatKg(t *testing.T) {
	assert.Equal(t, "20.200", formatKg(20.2))
	assert.Equal(t, "0.000", formatKg(0))
	assert.Equal(t, "1,234.568", formatKg(1234.5678))
}

func TestFormatKm(t *testing.T) {
	assert.Equal(t, "2,000.0", formatKm(2000))
	assert.Equal(t, "999.9", formatKm(999.9))
}

func TestRenderResultTableShowsAllDetails(t *testing.T) {
	buf := &bytes.Buffer{}
	result := calc.Result{
		CO2Kg:       20.2,
		Category:    "transportation",
		Subcategory: "car",
		Activity:    "car_petrol",
		Details: map[string]any{
			"distance_km":     100.0,
			"passengers":      2,
			"emission_factor": 0.404,
		},
	}

	require.NoError(t, renderResult(buf, result, "table"))
	out := buf.String()

	assert.Contains(t, out, "transportation / car / car_petrol")
	assert.Contains(t, out, "20.200 kg CO2e")
	assert.Contains(t, out, "distance_km: 100")
	assert.Contains(t, out, "emission_factor: 0.404")
	assert.Contains(t, out, "passengers: 2")
	assert.Contains(t, out, "Equivalent to driving ~105 miles")
}

func TestRenderResultDefaultsToTable(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, renderResult(buf, calc.Result{Category: "waste"}, ""))
	assert.Contains(t, buf.String(), "waste")
}

func TestRenderRecordsTable(t *testing.T) {
	buf := &bytes.Buffer{}
	records := []store.Record{
		{
			ID:        "01HTESTULID0000000000000000",
			Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Result:    calc.Result{CO2Kg: 5.7, Category: "waste", Activity: "landfill"},
		},
	}

	require.NoError(t, renderRecords(buf, records, "table"))
	out := buf.String()

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "01HTESTULID0000000000000000")
	assert.Contains(t, out, "2025-06-01 12:00")
	assert.Contains(t, out, "5.700")
}

func TestRenderRecordsUnsupportedFormat(t *testing.T) {
	err := renderRecords(&bytes.Buffer{}, nil, "yaml")
	require.Error(t, err)
}
