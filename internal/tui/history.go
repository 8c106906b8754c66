// Package tui provides the interactive history browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ecotrace/carbontrack/internal/store"
)

// Layout constants.
const (
	maxActivityDisplayLen = 24
	truncateSuffix        = "..."
	truncateOffset        = maxActivityDisplayLen - len(truncateSuffix)
	historyTableHeight    = 15
)

// Styles for the history browser.
//
//nolint:gochecknoglobals // Render styles are fixed for the process lifetime.
var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	helpStyle = lipgloss.NewStyle().Faint(true)
)

// HistoryModel is the Bubble Tea model for browsing saved emission results.
type HistoryModel struct {
	table   table.Model
	records []store.Record
}

// NewHistoryModel builds the browser over the given records, newest first.
func NewHistoryModel(records []store.Record) HistoryModel {
	columns := []table.Column{
		{Title: "Saved", Width: 16},
		{Title: "Category", Width: 15},
		{Title: "Activity", Width: maxActivityDisplayLen},
		{Title: "kg CO2e", Width: 12},
	}

	rows := make([]table.Row, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		record := records[i]
		activity := record.Result.Activity
		if len(activity) > maxActivityDisplayLen {
			activity = activity[:truncateOffset] + truncateSuffix
		}
		rows = append(rows, table.Row{
			record.Timestamp.Format("2006-01-02 15:04"),
			record.Result.Category,
			activity,
			fmt.Sprintf("%.3f", record.Result.CO2Kg),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(historyTableHeight),
	)

	return HistoryModel{table: t, records: records}
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(min(historyTableHeight, max(msg.Height-4, 3)))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	if len(m.records) == 0 {
		return "No saved results yet.\n" + helpStyle.Render("q: quit") + "\n"
	}
	return baseStyle.Render(m.table.View()) + "\n" +
		helpStyle.Render("up/down: navigate  q: quit") + "\n"
}

// RunHistory opens the interactive history browser and blocks until the
// user quits.
func RunHistory(records []store.Record) error {
	_, err := tea.NewProgram(NewHistoryModel(records)).Run()
	return err
}
