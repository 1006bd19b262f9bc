// Package mortgage computes affordability and amortization metrics of a
// single fixed-rate mortgage.
package mortgage

import (
	"fmt"
	"math"

	"github.com/sofglide/mortgage-simulator/pkg/constants"
	"github.com/sofglide/mortgage-simulator/pkg/mathutil"
	"go.uber.org/zap"
)

// Inputs are the financial parameters of a mortgage.
type Inputs struct {
	PropertyValue float64
	DownPayment   float64
	YearlyIncome  float64
	// Rate is the annual interest rate, either as a fraction (0.0115) or as a
	// percentage (1.15).
	Rate float64
}

// Model is an immutable mortgage. Every derived value is computed on demand.
type Model struct {
	propertyValue float64
	downPayment   float64
	yearlyIncome  float64
	rate          float64
	regime        Regime
	logger        *zap.Logger
}

// New builds a Model from inputs under the given regime. A loan-to-value
// ratio above the regime warning threshold is logged but accepted.
func New(logger *zap.Logger, inputs Inputs, regime Regime) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if inputs.PropertyValue <= 0 {
		return nil, fmt.Errorf("%w: property value must be positive, got %v", ErrInvalidInput, inputs.PropertyValue)
	}
	if inputs.YearlyIncome <= 0 {
		return nil, fmt.Errorf("%w: yearly income must be positive, got %v", ErrInvalidInput, inputs.YearlyIncome)
	}
	if inputs.Rate <= 0 || inputs.Rate > constants.MaxRatePercentage {
		return nil, fmt.Errorf("%w: interest rate must be in (0, %v], got %v",
			ErrInvalidInput, constants.MaxRatePercentage, inputs.Rate)
	}

	rate := inputs.Rate
	if rate > constants.ModelFractionRateCutoff {
		rate /= constants.PercentageMultiplier
	}

	m := &Model{
		propertyValue: inputs.PropertyValue,
		downPayment:   inputs.DownPayment,
		yearlyIncome:  inputs.YearlyIncome,
		rate:          rate,
		regime:        regime,
		logger:        logger,
	}
	m.checkLoanToValueLimit()
	return m, nil
}

func (m *Model) checkLoanToValueLimit() {
	if ratio := m.LoanToValueRatio(); ratio > m.regime.LoanToValueWarning {
		m.logger.Warn(fmt.Sprintf("Your loan to value ratio is too large: %.2f > %.2f", ratio, m.regime.LoanToValueWarning),
			zap.String("op", "mortgage.New"),
			zap.Float64("loanToValueRatio", ratio),
		)
	}
}

// PropertyValue returns the property value.
func (m *Model) PropertyValue() float64 { return m.propertyValue }

// DownPayment returns the down payment.
func (m *Model) DownPayment() float64 { return m.downPayment }

// YearlyIncome returns the yearly income.
func (m *Model) YearlyIncome() float64 { return m.yearlyIncome }

// Regime returns the regime the model was built with.
func (m *Model) Regime() Regime { return m.regime }

// Loan is the borrowed amount.
func (m *Model) Loan() float64 {
	return m.propertyValue - m.downPayment
}

// LoanToValueRatio is the loan divided by the property value.
func (m *Model) LoanToValueRatio() float64 {
	return m.Loan() / m.propertyValue
}

// LoanToIncomeRatio is the loan divided by the yearly income.
func (m *Model) LoanToIncomeRatio() float64 {
	return m.Loan() / m.yearlyIncome
}

// MonthlyRate is the monthly compounding rate.
func (m *Model) MonthlyRate() float64 {
	return mathutil.MonthlyRate(m.rate)
}

// APR is the annual percentage rate as a fraction.
func (m *Model) APR() float64 {
	return m.rate
}

// APY is the effective annual rate of monthly compounding.
func (m *Model) APY() float64 {
	return math.Pow(1+m.MonthlyRate(), constants.MonthsPerYear) - 1
}

// LoanToValueAmortizationRate is the yearly amortization required by the
// loan-to-value ratio.
func (m *Model) LoanToValueAmortizationRate() (float64, error) {
	ratio := m.LoanToValueRatio()
	if ratio < 0 {
		return 0, fmt.Errorf("%w: negative loan to value ratio %.2f", ErrInvalidInput, ratio)
	}
	rate := tierRate(m.regime.LoanToValueTiers, m.regime.LoanToValueAboveRate, ratio)
	m.logger.Debug(fmt.Sprintf("Loan to value ratio %v requires minimum amortization %v", ratio, rate),
		zap.String("op", "mortgage.LoanToValueAmortizationRate"),
	)
	return rate, nil
}

// IncomeAmortizationRate is the yearly amortization required by the
// loan-to-income ratio.
func (m *Model) IncomeAmortizationRate() (float64, error) {
	ratio := m.LoanToIncomeRatio()
	if ratio < 0 {
		return 0, fmt.Errorf("%w: negative loan to income ratio %.2f", ErrInvalidInput, ratio)
	}
	rate := tierRate(m.regime.LoanToIncomeTiers, m.regime.LoanToIncomeAboveRate, ratio)
	m.logger.Debug(fmt.Sprintf("Loan to income ratio %v requires minimum amortization %v", ratio, rate),
		zap.String("op", "mortgage.IncomeAmortizationRate"),
	)
	return rate, nil
}

// MinAmortizationRate is the total yearly amortization requirement.
func (m *Model) MinAmortizationRate() (float64, error) {
	valueRate, err := m.LoanToValueAmortizationRate()
	if err != nil {
		return 0, err
	}
	incomeRate, err := m.IncomeAmortizationRate()
	if err != nil {
		return 0, err
	}
	return valueRate + incomeRate, nil
}

// MonthlyInterest is the interest of the first month.
func (m *Model) MonthlyInterest() float64 {
	return CalculateInterestPayment(m.Loan(), m.MonthlyRate())
}

// MinimumAmortization is the smallest monthly amortization allowed.
func (m *Model) MinimumAmortization() (float64, error) {
	rate, err := m.MinAmortizationRate()
	if err != nil {
		return 0, err
	}
	return m.Loan() * rate / constants.MonthsPerYear, nil
}

// MinimumMonthlyPayment is the monthly interest plus the minimum amortization.
func (m *Model) MinimumMonthlyPayment() (float64, error) {
	amortization, err := m.MinimumAmortization()
	if err != nil {
		return 0, err
	}
	return m.MonthlyInterest() + amortization, nil
}

// MaximumTermMonths is the payoff term of the minimum monthly payment.
func (m *Model) MaximumTermMonths() (float64, error) {
	payment, err := m.MinimumMonthlyPayment()
	if err != nil {
		return 0, err
	}
	return m.TermMonths(payment)
}

// MaximumTermYears is MaximumTermMonths in years.
func (m *Model) MaximumTermYears() (float64, error) {
	months, err := m.MaximumTermMonths()
	if err != nil {
		return 0, err
	}
	return months / constants.MonthsPerYear, nil
}

// TaxDeduction is the tax returned on the first month's interest.
func (m *Model) TaxDeduction() float64 {
	return m.MonthlyInterest() * m.regime.TaxDeductionRate
}

// Amortization is the principal share of a monthly payment in the first month.
func (m *Model) Amortization(monthlyPayment float64) float64 {
	return monthlyPayment - m.MonthlyInterest()
}

// AmortizationRate is the yearly amortization of monthlyPayment as a share of
// the loan.
func (m *Model) AmortizationRate(monthlyPayment float64) float64 {
	return m.Amortization(monthlyPayment) / m.Loan() * constants.MonthsPerYear
}

// TermMonths is the number of months monthlyPayment needs to repay the loan.
// It fails when the payment does not cover the monthly interest.
func (m *Model) TermMonths(monthlyPayment float64) (float64, error) {
	return CalculateTermMonths(m.Loan(), m.MonthlyRate(), monthlyPayment)
}

// TermYears is TermMonths in years.
func (m *Model) TermYears(monthlyPayment float64) (float64, error) {
	months, err := m.TermMonths(monthlyPayment)
	if err != nil {
		return 0, err
	}
	return months / constants.MonthsPerYear, nil
}

// MonthlyPaymentForTerm is the annuity payment repaying the loan in termYears.
func (m *Model) MonthlyPaymentForTerm(termYears float64) (float64, error) {
	if termYears <= 0 {
		return 0, fmt.Errorf("%w: mortgage term must be positive, got %v", ErrInvalidInput, termYears)
	}
	return CalculateMonthlyPayment(m.Loan(), m.MonthlyRate(), termYears*constants.MonthsPerYear), nil
}

// TotalPayment is the sum of all payments until payoff.
func (m *Model) TotalPayment(monthlyPayment float64) (float64, error) {
	months, err := m.TermMonths(monthlyPayment)
	if err != nil {
		return 0, err
	}
	return monthlyPayment * months, nil
}

// TotalInterest is the interest paid until payoff.
func (m *Model) TotalInterest(monthlyPayment float64) (float64, error) {
	total, err := m.TotalPayment(monthlyPayment)
	if err != nil {
		return 0, err
	}
	return total - m.Loan(), nil
}

// InterestToPrincipalRatio is the total interest as a share of the loan.
func (m *Model) InterestToPrincipalRatio(monthlyPayment float64) (float64, error) {
	interest, err := m.TotalInterest(monthlyPayment)
	if err != nil {
		return 0, err
	}
	return interest / m.Loan(), nil
}
