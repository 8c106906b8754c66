package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ecotrace/carbontrack/internal/calc"
	"github.com/ecotrace/carbontrack/internal/equiv"
	"github.com/ecotrace/carbontrack/internal/store"
)

// Supported output formats.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Styles for table output.
//
//nolint:gochecknoglobals // Render styles are fixed for the process lifetime.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	co2Style    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	detailStyle = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// formatKg renders a kg CO2e value with 3 decimals and thousand separators.
func formatKg(v float64) string {
	return printer.Sprintf("%.3f", v)
}

// formatKm renders a distance with 1 decimal and thousand separators.
func formatKm(v float64) string {
	return printer.Sprintf("%.1f", v)
}

// renderResult writes a calculation result in the requested format.
func renderResult(w io.Writer, result calc.Result, format string) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case outputTable, "":
		renderResultTable(w, result)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (expected table or json)", format)
	}
}

// renderResultTable writes the human-readable single-result view.
func renderResultTable(w io.Writer, result calc.Result) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s / %s / %s",
		result.Category, result.Subcategory, result.Activity)))
	fmt.Fprintln(w, co2Style.Render(fmt.Sprintf("Estimated emissions: %s kg CO2e", formatKg(result.CO2Kg))))

	for _, key := range sortedDetailKeys(result.Details) {
		fmt.Fprintln(w, detailStyle.Render(fmt.Sprintf("  %s: %v", key, result.Details[key])))
	}

	if eq := equiv.ForKg(result.CO2Kg); !eq.IsEmpty {
		fmt.Fprintln(w, detailStyle.Render(eq.DisplayText))
	}
}

// renderRecords writes the saved history in the requested format.
func renderRecords(w io.Writer, records []store.Record, format string) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case outputTable, "":
		renderRecordsTable(w, records)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (expected table or json)", format)
	}
}

// renderRecordsTable writes the history as a fixed-width table.
func renderRecordsTable(w io.Writer, records []store.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No saved results yet.")
		return
	}

	const rowFormat = "%-26s  %-16s  %-15s  %-24s  %12s\n"
	fmt.Fprint(w, headerStyle.Render(strings.TrimRight(
		fmt.Sprintf(rowFormat, "ID", "SAVED", "CATEGORY", "ACTIVITY", "KG CO2E"), "\n")))
	fmt.Fprintln(w)

	for _, record := range records {
		fmt.Fprintf(w, rowFormat,
			record.ID,
			record.Timestamp.Format("2006-01-02 15:04"),
			record.Result.Category,
			record.Result.Activity,
			formatKg(record.Result.CO2Kg),
		)
	}
}

// sortedDetailKeys returns detail keys in stable order for deterministic
// rendering.
func sortedDetailKeys(details map[string]any) []string {
	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
