package mortgage

import (
	"fmt"

	"github.com/sofglide/mortgage-simulator/pkg/constants"
	"github.com/sofglide/mortgage-simulator/pkg/mathutil"
	"go.uber.org/zap"
)

// Simulation holds every metric of a mortgage repaid at a fixed monthly payment.
type Simulation struct {
	Title string `yaml:"title"`

	PropertyValue float64 `yaml:"propertyValue"`
	DownPayment   float64 `yaml:"downPayment"`
	Loan          float64 `yaml:"loan"`
	InterestRate  float64 `yaml:"interestRate"`

	LoanToValueRatio      float64 `yaml:"loanToValueRatio"`
	LoanToIncomeRatio     float64 `yaml:"loanToIncomeRatio"`
	MinAmortizationRate   float64 `yaml:"minAmortizationRate"`
	MinimumAmortization   float64 `yaml:"minimumAmortization"`
	MinimumMonthlyPayment float64 `yaml:"minimumMonthlyPayment"`
	MaximumTermYears      float64 `yaml:"maximumTermYears"`

	MonthlyPayment   float64 `yaml:"monthlyPayment"`
	BelowMinimum     bool    `yaml:"belowMinimum"`
	MonthlyInterest  float64 `yaml:"monthlyInterest"`
	TaxDeduction     float64 `yaml:"taxDeduction"`
	InterestNetOfTax float64 `yaml:"interestNetOfTax"`
	Amortization     float64 `yaml:"amortization"`
	AmortizationRate float64 `yaml:"amortizationRate"`
	TermYears        float64 `yaml:"termYears"`

	TotalPrincipal      float64 `yaml:"totalPrincipal"`
	TotalInterest       float64 `yaml:"totalInterest"`
	TotalPayment        float64 `yaml:"totalPayment"`
	InterestToPrincipal float64 `yaml:"interestToPrincipal"`
	APY                 float64 `yaml:"apy"`
	APR                 float64 `yaml:"apr"`
}

// SimulateByPayment simulates repaying the mortgage with monthlyPayment.
// Zero is not a payment: SimulateByPayment(0, title) simulates the minimum
// monthly payment, and the returned MonthlyPayment holds that minimum.
// Payments below the minimum are simulated after logging a warning.
func (m *Model) SimulateByPayment(monthlyPayment float64, title string) (Simulation, error) {
	minimumPayment, err := m.MinimumMonthlyPayment()
	if err != nil {
		return Simulation{}, err
	}
	if monthlyPayment == 0 {
		monthlyPayment = minimumPayment
	}

	// Payments within a cent of the minimum count as the minimum.
	belowMinimum := monthlyPayment < minimumPayment &&
		!mathutil.WithinTolerance(monthlyPayment, minimumPayment, constants.CurrencyTolerance)
	if belowMinimum {
		m.logger.Warn(fmt.Sprintf("Monthly payment %d is below minimum %d", int(monthlyPayment), int(minimumPayment)),
			zap.String("op", "mortgage.SimulateByPayment"),
			zap.String("simulation", title),
		)
	}

	minRate, err := m.MinAmortizationRate()
	if err != nil {
		return Simulation{}, err
	}
	maximumTerm, err := m.MaximumTermYears()
	if err != nil {
		return Simulation{}, err
	}
	termMonths, err := m.TermMonths(monthlyPayment)
	if err != nil {
		return Simulation{}, err
	}

	totalPayment := monthlyPayment * termMonths
	loan := m.Loan()

	return Simulation{
		Title:                 title,
		PropertyValue:         m.propertyValue,
		DownPayment:           m.downPayment,
		Loan:                  loan,
		InterestRate:          m.rate,
		LoanToValueRatio:      m.LoanToValueRatio(),
		LoanToIncomeRatio:     m.LoanToIncomeRatio(),
		MinAmortizationRate:   minRate,
		MinimumAmortization:   loan * minRate / constants.MonthsPerYear,
		MinimumMonthlyPayment: minimumPayment,
		MaximumTermYears:      maximumTerm,
		MonthlyPayment:        monthlyPayment,
		BelowMinimum:          belowMinimum,
		MonthlyInterest:       m.MonthlyInterest(),
		TaxDeduction:          m.TaxDeduction(),
		InterestNetOfTax:      m.MonthlyInterest() - m.TaxDeduction(),
		Amortization:          m.Amortization(monthlyPayment),
		AmortizationRate:      m.AmortizationRate(monthlyPayment),
		TermYears:             termMonths / constants.MonthsPerYear,
		TotalPrincipal:        loan,
		TotalInterest:         totalPayment - loan,
		TotalPayment:          totalPayment,
		InterestToPrincipal:   (totalPayment - loan) / loan,
		APY:                   m.APY(),
		APR:                   m.APR(),
	}, nil
}

// SimulateByTerm simulates the annuity payment that repays the mortgage in
// termYears.
func (m *Model) SimulateByTerm(termYears float64, title string) (Simulation, error) {
	monthlyPayment, err := m.MonthlyPaymentForTerm(termYears)
	if err != nil {
		return Simulation{}, err
	}
	return m.SimulateByPayment(monthlyPayment, title)
}
