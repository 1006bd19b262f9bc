package mortgage

import "github.com/sofglide/mortgage-simulator/pkg/constants"

// Tier is one row of an amortization requirement table: ratios strictly
// below Below require amortizing Rate of the loan per year.
type Tier struct {
	Below float64
	Rate  float64
}

// Regime holds the regulatory thresholds applied by a Model.
type Regime struct {
	// LoanToValueTiers must be sorted by ascending Below.
	LoanToValueTiers []Tier
	// LoanToValueAboveRate applies when the ratio reaches the last tier.
	LoanToValueAboveRate float64
	// LoanToIncomeTiers must be sorted by ascending Below.
	LoanToIncomeTiers     []Tier
	LoanToIncomeAboveRate float64
	// LoanToValueWarning is the ratio above which construction logs a warning.
	LoanToValueWarning float64
	TaxDeductionRate   float64
}

// DefaultRegime returns the Swedish amortization requirements. The top two
// loan-to-value tiers share the same 2% rate.
func DefaultRegime() Regime {
	return Regime{
		LoanToValueTiers: []Tier{
			{Below: 0.5, Rate: 0.0},
			{Below: 0.7, Rate: 0.01},
			{Below: 0.85, Rate: 0.02},
		},
		LoanToValueAboveRate: 0.02,
		LoanToIncomeTiers: []Tier{
			{Below: 4.5, Rate: 0.0},
		},
		LoanToIncomeAboveRate: 0.01,
		LoanToValueWarning:    constants.DefaultLoanToValueWarning,
		TaxDeductionRate:      constants.DefaultTaxDeductionRate,
	}
}

// tierRate returns the rate of the first tier whose threshold lies above ratio.
func tierRate(tiers []Tier, aboveRate, ratio float64) float64 {
	for _, tier := range tiers {
		if ratio < tier.Below {
			return tier.Rate
		}
	}
	return aboveRate
}
