package equiv

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Scaling thresholds for abbreviated display.
const (
	// MillionThreshold is where display switches to "~X.X million".
	MillionThreshold = 1_000_000

	// BillionThreshold is where display switches to "~X.X billion".
	BillionThreshold = 1_000_000_000
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatLarge formats large values with abbreviated notation:
// comma-separated integers below a million, "~X.X million" and
// "~X.X billion" above.
func FormatLarge(v float64) string {
	switch {
	case v >= BillionThreshold:
		return fmt.Sprintf("~%.1f billion", v/BillionThreshold)
	case v >= MillionThreshold:
		return fmt.Sprintf("~%.1f million", v/MillionThreshold)
	default:
		return FormatNumber(int64(math.Round(v)))
	}
}

// formatValue picks the right scale for an equivalency value.
func formatValue(v float64) string {
	if v >= MillionThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
