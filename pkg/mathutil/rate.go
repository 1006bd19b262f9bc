package mathutil

import (
	"fmt"

	"github.com/sofglide/mortgage-simulator/pkg/constants"
	"github.com/sofglide/mortgage-simulator/pkg/validation"
)

// NormalizeRate converts a rate given either as a percentage (1.5) or as a
// fraction (0.015) to a fraction. Values above FractionRateCutoff are read as
// percentages.
func NormalizeRate(rate float64) (float64, error) {
	if rate > constants.MaxRatePercentage {
		return 0, fmt.Errorf("%w: invalid rate %v exceeds %v", validation.ErrInvalidInput, rate, constants.MaxRatePercentage)
	}
	if rate < 0 {
		return 0, fmt.Errorf("%w: invalid negative rate %v", validation.ErrInvalidInput, rate)
	}
	if rate > constants.FractionRateCutoff {
		return rate / constants.PercentageMultiplier, nil
	}
	return rate, nil
}

// MonthlyRate returns the monthly compounding rate for an annual fraction.
func MonthlyRate(annualRate float64) float64 {
	return annualRate / constants.MonthsPerYear
}
