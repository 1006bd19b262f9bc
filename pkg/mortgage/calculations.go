package mortgage

import (
	"fmt"
	"math"

	"github.com/sofglide/mortgage-simulator/pkg/constants"
	"github.com/sofglide/mortgage-simulator/pkg/validation"
)

// ErrInvalidInput is returned, wrapped, for every user-input error.
var ErrInvalidInput = validation.ErrInvalidInput

// CalculateMonthlyPayment calculates the monthly payment that repays loan in
// termMonths using the standard annuity formula. A zero monthlyRate repays
// the loan in equal parts; Model never passes one since New rejects a zero
// rate.
func CalculateMonthlyPayment(loan, monthlyRate, termMonths float64) float64 {
	if monthlyRate == 0 {
		return loan / termMonths
	}
	return monthlyRate * loan / (1 - math.Pow(1+monthlyRate, -termMonths))
}

// CalculateTermMonths inverts the annuity formula: the number of months a
// fixed monthlyPayment needs to repay loan.
func CalculateTermMonths(loan, monthlyRate, monthlyPayment float64) (float64, error) {
	if monthlyPayment <= loan*monthlyRate {
		return 0, fmt.Errorf("%w: monthly payment %v needs to be above monthly interest %v",
			ErrInvalidInput, monthlyPayment, loan*monthlyRate)
	}
	a := monthlyPayment / monthlyRate
	return (math.Log(a) - math.Log(a-loan)) / math.Log(1+monthlyRate), nil
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingLoan, monthlyRate float64) float64 {
	return remainingLoan * monthlyRate
}

// MinimumPayment returns the first monthly payment of a loan that amortizes
// amortizationRate of principal per year at interestRate. Both rates are
// fractions.
func MinimumPayment(principal, amortizationRate, interestRate float64) float64 {
	amortization := amortizationRate / constants.MonthsPerYear * principal
	interest := interestRate / constants.MonthsPerYear * principal
	return amortization + interest
}
