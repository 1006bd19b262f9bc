// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
)

// TierConfig is one threshold of an amortization tier table.
type TierConfig struct {
	Below float64
	Rate  float64
}

// RegimeConfig is the regulatory regime as read from configuration.
type RegimeConfig struct {
	LoanToValueTiers      []TierConfig
	LoanToValueAboveRate  float64
	LoanToIncomeTiers     []TierConfig
	LoanToIncomeAboveRate float64
	LoanToValueWarning    float64
	TaxDeductionRate      float64
}

// ValidateFraction warns when a rate is not a fraction in [0, 1].
func ValidateFraction(name string, value float64) string {
	if value < 0 || value > 1 {
		return fmt.Sprintf("%s should be a fraction between 0 and 1, got %v", name, value)
	}
	return ""
}

// ValidateTiers checks that tier thresholds are strictly ascending and that
// every tier rate is a fraction.
func ValidateTiers(name string, tiers []TierConfig) []string {
	var warnings []string

	if len(tiers) == 0 {
		warnings = append(warnings, fmt.Sprintf("%s has no tiers, the above rate applies to every ratio", name))
	}

	for i, tier := range tiers {
		if i > 0 && tier.Below <= tiers[i-1].Below {
			warnings = append(warnings, fmt.Sprintf("%s tier %d threshold %v is not above previous threshold %v",
				name, i, tier.Below, tiers[i-1].Below))
		}
		if w := ValidateFraction(fmt.Sprintf("%s tier %d rate", name, i), tier.Rate); w != "" {
			warnings = append(warnings, w)
		}
	}

	return warnings
}

// ValidateAll validates the regime and returns warnings
func (rc *RegimeConfig) ValidateAll() []string {
	var warnings []string

	warnings = append(warnings, ValidateTiers("Loan to value", rc.LoanToValueTiers)...)
	warnings = append(warnings, ValidateTiers("Loan to income", rc.LoanToIncomeTiers)...)

	checks := []struct {
		name  string
		value float64
	}{
		{"Loan to value above rate", rc.LoanToValueAboveRate},
		{"Loan to income above rate", rc.LoanToIncomeAboveRate},
		{"Loan to value warning", rc.LoanToValueWarning},
		{"Tax deduction rate", rc.TaxDeductionRate},
	}
	for _, check := range checks {
		if w := ValidateFraction(check.name, check.value); w != "" {
			warnings = append(warnings, w)
		}
	}

	return warnings
}
