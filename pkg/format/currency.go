// Package format renders numbers the way the reports display them.
package format

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sofglide/mortgage-simulator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Thousands returns an integer with thousands separators (e.g., "-1,234,567").
func Thousands(n int64) string {
	return printer.Sprintf("%d", n)
}

// Truncated drops the fractional part of amount and adds thousands
// separators, so 1916.67 becomes "1,916".
func Truncated(amount float64) string {
	return Thousands(decimal.NewFromFloat(amount).Truncate(0).IntPart())
}

// Rounded rounds amount half to even and adds thousands separators, so 2.5
// becomes "2" and 3.5 becomes "4".
func Rounded(amount float64) string {
	return Thousands(decimal.NewFromFloat(amount).RoundBank(0).IntPart())
}

// Money returns a truncated amount followed by the currency suffix
// (e.g., "2,000,000 sek").
func Money(amount float64, currency string) string {
	return Truncated(amount) + " " + currency
}

// Percent formats a fraction as a percentage with the given number of
// decimals (e.g., Percent(0.0115, 2) is "1.15 %").
func Percent(fraction float64, decimals int) string {
	return fmt.Sprintf("%.*f %%", decimals, mathutil.Percentage(fraction))
}

// Ratio formats a plain ratio to two decimals.
func Ratio(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// Years formats a duration in years to one decimal followed by unit.
func Years(years float64, unit string) string {
	return fmt.Sprintf("%.1f %s", years, unit)
}
