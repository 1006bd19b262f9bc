package config

import (
	"github.com/sofglide/mortgage-simulator/pkg/mortgage"
	"github.com/sofglide/mortgage-simulator/pkg/validation"
)

var (
	defaultLoanToValueAboveRate  = mortgage.DefaultRegime().LoanToValueAboveRate
	defaultLoanToIncomeAboveRate = mortgage.DefaultRegime().LoanToIncomeAboveRate
)

// Tier indicates an amortization requirement for ratios below a threshold.
type Tier struct {
	Below float64 `mapstructure:"below" yaml:"below"`
	Rate  float64 `mapstructure:"rate" yaml:"rate"`
}

// RegimeConfig holds the amortization requirements and tax rules.
type RegimeConfig struct {
	LoanToValueTiers      []Tier  `mapstructure:"loanToValueTiers" yaml:"loanToValueTiers"`
	LoanToValueAboveRate  float64 `mapstructure:"loanToValueAboveRate" yaml:"loanToValueAboveRate"`
	LoanToIncomeTiers     []Tier  `mapstructure:"loanToIncomeTiers" yaml:"loanToIncomeTiers"`
	LoanToIncomeAboveRate float64 `mapstructure:"loanToIncomeAboveRate" yaml:"loanToIncomeAboveRate"`
	LoanToValueWarning    float64 `mapstructure:"loanToValueWarning" yaml:"loanToValueWarning"`
	TaxDeductionRate      float64 `mapstructure:"taxDeductionRate" yaml:"taxDeductionRate"`
}

// fillTiers installs the default tier tables that the file left out.
func (r *RegimeConfig) fillTiers() {
	regime := mortgage.DefaultRegime()
	if len(r.LoanToValueTiers) == 0 {
		r.LoanToValueTiers = fromMortgageTiers(regime.LoanToValueTiers)
	}
	if len(r.LoanToIncomeTiers) == 0 {
		r.LoanToIncomeTiers = fromMortgageTiers(regime.LoanToIncomeTiers)
	}
}

// MortgageRegime converts the configuration to the regime applied by the model.
func (r RegimeConfig) MortgageRegime() mortgage.Regime {
	return mortgage.Regime{
		LoanToValueTiers:      toMortgageTiers(r.LoanToValueTiers),
		LoanToValueAboveRate:  r.LoanToValueAboveRate,
		LoanToIncomeTiers:     toMortgageTiers(r.LoanToIncomeTiers),
		LoanToIncomeAboveRate: r.LoanToIncomeAboveRate,
		LoanToValueWarning:    r.LoanToValueWarning,
		TaxDeductionRate:      r.TaxDeductionRate,
	}
}

func (r RegimeConfig) validationConfig() validation.RegimeConfig {
	convert := func(tiers []Tier) []validation.TierConfig {
		var converted []validation.TierConfig
		for _, tier := range tiers {
			converted = append(converted, validation.TierConfig{Below: tier.Below, Rate: tier.Rate})
		}
		return converted
	}
	return validation.RegimeConfig{
		LoanToValueTiers:      convert(r.LoanToValueTiers),
		LoanToValueAboveRate:  r.LoanToValueAboveRate,
		LoanToIncomeTiers:     convert(r.LoanToIncomeTiers),
		LoanToIncomeAboveRate: r.LoanToIncomeAboveRate,
		LoanToValueWarning:    r.LoanToValueWarning,
		TaxDeductionRate:      r.TaxDeductionRate,
	}
}

func toMortgageTiers(tiers []Tier) []mortgage.Tier {
	converted := make([]mortgage.Tier, 0, len(tiers))
	for _, tier := range tiers {
		converted = append(converted, mortgage.Tier{Below: tier.Below, Rate: tier.Rate})
	}
	return converted
}

func fromMortgageTiers(tiers []mortgage.Tier) []Tier {
	converted := make([]Tier, 0, len(tiers))
	for _, tier := range tiers {
		converted = append(converted, Tier{Below: tier.Below, Rate: tier.Rate})
	}
	return converted
}
