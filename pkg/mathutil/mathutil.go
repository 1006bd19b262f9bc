// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/sofglide/mortgage-simulator/pkg/constants"
)

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Percentage converts a fraction to a percentage.
func Percentage(fraction float64) float64 {
	return fraction * constants.PercentageMultiplier
}
