package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrace/carbontrack/internal/calc"
	"github.com/ecotrace/carbontrack/internal/config"
	"github.com/ecotrace/carbontrack/internal/factors"
	"github.com/ecotrace/carbontrack/internal/store"
)

// stubStore is an in-memory Store for command tests.
type stubStore struct {
	records []store.Record
	saveErr error
}

func (s *stubStore) Save(_ context.Context, result calc.Result) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	record := store.Record{
		ID:        fmt.Sprintf("TESTID%02d", len(s.records)+1),
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Result:    result,
	}
	s.records = append(s.records, record)
	return record.ID, nil
}

func (s *stubStore) List(_ context.Context) ([]store.Record, error) {
	return s.records, nil
}

// stubProvider returns a fixed distance or error.
type stubProvider struct {
	km    float64
	err   error
	calls int
}

func (p *stubProvider) Distance(_ context.Context, _, _ string) (float64, error) {
	p.calls++
	if p.err != nil {
		return 0, p.err
	}
	return p.km, nil
}

// newTestApp builds an app with every collaborator stubbed so no command
// touches the network or the real home directory.
func newTestApp(t *testing.T) (*app, *stubStore, *stubProvider) {
	t.Helper()

	dir := t.TempDir()
	s := &stubStore{}
	p := &stubProvider{km: 2000}

	a := &app{
		cfg: &config.Config{
			Factors: filepath.Join(dir, "factors.json"),
			History: filepath.Join(dir, "history.json"),
			Logging: config.LoggingConfig{Level: "error", Format: "json"},
		},
		calculator: calc.New(factors.Default()),
		store:      s,
		provider:   p,
	}
	return a, s, p
}

// executeCommand runs the command tree with the given args and returns the
// combined output.
func executeCommand(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd("test", a)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestTransportCommand(t *testing.T) {
	a, _, _ := newTestApp(t)

	out, err := executeCommand(t, a,
		"transport", "--type", "car", "--fuel", "petrol", "--distance", "100", "--passengers", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "20.200 kg CO2e")
	assert.Contains(t, out, "transportation / car / car_petrol")
}

func TestTransportCommandJSON(t *testing.T) {
	a, _, _ := newTestApp(t)

	out, err := executeCommand(t, a,
		"transport", "--type", "car", "--fuel", "petrol", "--distance", "100",
		"--passengers", "2", "--output", "json")
	require.NoError(t, err)

	var result calc.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.InDelta(t, 20.2, result.CO2Kg, 1e-9)
	assert.Equal(t, "car_petrol", result.Activity)
	assert.InDelta(t, 0.404, result.Details["emission_factor"].(float64), 1e-9)
}

func TestTransportCommandUnknownFuel(t *testing.T) {
	a, _, _ := newTestApp(t)

	_, err := executeCommand(t, a,
		"transport", "--type", "car", "--fuel", "steam", "--distance", "10")
	require.ErrorIs(t, err, calc.ErrUnknownFactor)
	assert.Contains(t, err.Error(), "transportation.car.steam")
}

func TestEnergyCommand(t *testing.T) {
	a, _, _ := newTestApp(t)

	out, err := executeCommand(t, a,
		"energy", "--type", "electricity", "--source", "grid_average", "--amount", "250")
	require.NoError(t, err)
	assert.Contains(t, out, "114.250 kg CO2e")
}

func TestEnergyCommandBadUnit(t *testing.T) {
	a, _, _ := newTestApp(t)

	_, err := executeCommand(t, a,
		"energy", "--type", "electricity", "--source", "grid_average",
		"--amount", "250", "--unit", "joules")
	require.ErrorIs(t, err, calc.ErrInvalidArgument)
}

func TestFoodCommand(t *testing.T) {
	a, _, _ := newTestApp(t)

	out, err := executeCommand(t, a,
		"food", "--type", "meat", "--item", "beef", "--amount", "2",
		"--unit", "servings", "--local")
	require.NoError(t, err)
	assert.Contains(t, out, "6.885 kg CO2e")
}

func TestConsumptionCommand(t *testing.T) {
	a, _, _ := newTestApp(t)

	out, err := executeCommand(t, a,
		"consumption", "--type", "electronics", "--item", "smartphone", "--lifetime", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "14.000 kg CO2e")
}

func TestConsumptionCommandZeroLifetime(t *testing.T) {
	a, _, _ := newTestApp(t)

	// An explicit zero lifetime is rejected, not treated as "unset".
	_, err := executeCommand(t, a,
		"consumption", "--type", "electronics", "--item", "smartphone", "--lifetime", "0")
	require.ErrorIs(t, err, calc.ErrInvalidArgument)
}

func TestWasteCommand(t *testing.T) {
	a, _, _ := newTestApp(t)

	out, err := executeCommand(t, a, "waste", "--method", "landfill", "--amount", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "5.700 kg CO2e")
}

func TestFlightCommandResolvesDistance(t *testing.T) {
	a, _, provider := newTestApp(t)
	provider.km = 2000

	out, err := executeCommand(t, a, "flight", "--from", "Berlin", "--to", "Madrid")
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls)
	assert.Contains(t, out, "Flight class: domestic_long")
	assert.Contains(t, out, "390.000 kg CO2e")
}

func TestFlightCommandExplicitDistanceSkipsProvider(t *testing.T) {
	a, _, provider := newTestApp(t)
	provider.err = fmt.Errorf("should not be called")

	out, err := executeCommand(t, a, "flight", "--distance", "500")
	require.NoError(t, err)

	assert.Zero(t, provider.calls)
	assert.Contains(t, out, "Flight class: domestic_short")
	assert.Contains(t, out, "127.500 kg CO2e")
}

func TestFlightCommandProviderFailure(t *testing.T) {
	a, _, provider := newTestApp(t)
	provider.err = fmt.Errorf("place not found")

	_, err := executeCommand(t, a, "flight", "--from", "Berlin", "--to", "Atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "place not found")
}

func TestFlightCommandMissingFlags(t *testing.T) {
	a, _, _ := newTestApp(t)

	_, err := executeCommand(t, a, "flight", "--from", "Berlin")
	require.Error(t, err)
}

func TestSaveFlagPersistsResult(t *testing.T) {
	a, saved, _ := newTestApp(t)

	out, err := executeCommand(t, a,
		"waste", "--method", "landfill", "--amount", "10", "--save")
	require.NoError(t, err)

	require.Len(t, saved.records, 1)
	assert.Equal(t, "waste", saved.records[0].Result.Category)
	assert.Contains(t, out, "Saved with ID TESTID01")
}

func TestNoSaveWinsOverSave(t *testing.T) {
	a, saved, _ := newTestApp(t)

	_, err := executeCommand(t, a,
		"waste", "--method", "landfill", "--amount", "10", "--save", "--no-save")
	require.NoError(t, err)
	assert.Empty(t, saved.records)
}

func TestHistoryCommand(t *testing.T) {
	a, saved, _ := newTestApp(t)
	_, err := saved.Save(context.Background(), calc.Result{
		CO2Kg: 5.7, Category: "waste", Subcategory: "landfill", Activity: "landfill",
	})
	require.NoError(t, err)

	out, err := executeCommand(t, a, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "TESTID01")
	assert.Contains(t, out, "landfill")
	assert.Contains(t, out, "5.700")
}

func TestHistoryCommandEmpty(t *testing.T) {
	a, _, _ := newTestApp(t)

	out, err := executeCommand(t, a, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved results yet.")
}

func TestHistoryCommandJSON(t *testing.T) {
	a, saved, _ := newTestApp(t)
	_, err := saved.Save(context.Background(), calc.Result{CO2Kg: 1, Category: "energy"})
	require.NoError(t, err)

	out, err := executeCommand(t, a, "history", "--output", "json")
	require.NoError(t, err)

	var records []store.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "energy", records[0].Result.Category)
}

func TestFactorsCommand(t *testing.T) {
	a, _, _ := newTestApp(t)

	out, err := executeCommand(t, a, "factors", "transportation")
	require.NoError(t, err)
	assert.Contains(t, out, "car")
	assert.Contains(t, out, "petrol")
	assert.Contains(t, out, "0.404")
}

func TestFactorsCommandUnknownCategory(t *testing.T) {
	a, _, _ := newTestApp(t)

	_, err := executeCommand(t, a, "factors", "antimatter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestUnsupportedOutputFormat(t *testing.T) {
	a, _, _ := newTestApp(t)

	_, err := executeCommand(t, a,
		"waste", "--method", "landfill", "--amount", "10", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
