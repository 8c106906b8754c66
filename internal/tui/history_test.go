package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrace/carbontrack/internal/calc"
	"github.com/ecotrace/carbontrack/internal/store"
)

func testRecords() []store.Record {
	return []store.Record{
		{
			ID:        "01HOLD0000000000000000000000",
			Timestamp: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
			Result:    calc.Result{CO2Kg: 20.2, Category: "transportation", Activity: "car_petrol"},
		},
		{
			ID:        "01HNEW0000000000000000000000",
			Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Result:    calc.Result{CO2Kg: 5.7, Category: "waste", Activity: "landfill"},
		},
	}
}

func TestHistoryModelView(t *testing.T) {
	m := NewHistoryModel(testRecords())
	view := m.View()

	assert.Contains(t, view, "car_petrol")
	assert.Contains(t, view, "landfill")
	assert.Contains(t, view, "20.200")
	assert.Contains(t, view, "q: quit")
}

func TestHistoryModelNewestFirst(t *testing.T) {
	m := NewHistoryModel(testRecords())

	rows := m.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-06-01 12:00", rows[0][0])
	assert.Equal(t, "2025-05-01 09:00", rows[1][0])
}

func TestHistoryModelEmpty(t *testing.T) {
	m := NewHistoryModel(nil)
	assert.Contains(t, m.View(), "No saved results yet.")
}

func TestHistoryModelQuits(t *testing.T) {
	m := NewHistoryModel(testRecords())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHistoryModelTruncatesLongActivities(t *testing.T) {
	records := []store.Record{{
		ID:        "01HLONG000000000000000000000",
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Result: calc.Result{
			CO2Kg:    1.0,
			Category: "consumption",
			Activity: "an_extremely_long_activity_label_that_overflows",
		},
	}}

	m := NewHistoryModel(records)
	rows := m.table.Rows()
	require.Len(t, rows, 1)
	assert.LessOrEqual(t, len(rows[0][2]), maxActivityDisplayLen)
	assert.Contains(t, rows[0][2], "...")
}
