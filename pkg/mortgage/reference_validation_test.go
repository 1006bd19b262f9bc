package mortgage

import (
	"fmt"
	"math"
	"testing"

	"go.uber.org/zap"
)

// ReferencePayment represents a single payment from the reference schedule
type ReferencePayment struct {
	Month            int
	PrincipalPayment float64
	Interest         float64
	LoanBalance      float64
}

// getReferenceSchedule returns the authoritative amortization schedule data
// Based on: Loan amount $175,000, Interest rate 4.5%, Term 360 months
// Calculator: https://www.fidelitygroup.com/amortizing-loan-calculator
func getReferenceSchedule() []ReferencePayment {
	return []ReferencePayment{
		{1, 230.45, 656.25, 174769.55},
		{2, 231.31, 655.39, 174538.24},
		{12, 240.14, 646.56, 172176.85},
		{24, 251.17, 635.53, 169224.01},
		{36, 262.71, 623.99, 166135.52},
		{60, 287.40, 599.30, 159526.36},
		{120, 359.76, 526.94, 140156.51},
		{180, 450.35, 436.35, 115909.42},
		{240, 563.75, 322.95, 85557.02},
		{300, 705.70, 181.00, 47562.00},
		{359, 880.09, 6.61, 883.39},
		{360, 883.39, 3.31, 0.00},
	}
}

// referenceModel borrows 175,000 at 4.5% against a property worth twice that.
func referenceModel(t *testing.T) *Model {
	t.Helper()
	m, err := New(zap.NewNop(), Inputs{PropertyValue: 350000, DownPayment: 175000, YearlyIncome: 100000, Rate: 4.5}, DefaultRegime())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestMonthlyPaymentCalculationAgainstReference(t *testing.T) {
	m := referenceModel(t)

	monthlyPayment, err := m.MonthlyPaymentForTerm(30)
	if err != nil {
		t.Fatalf("MonthlyPaymentForTerm() error = %v", err)
	}
	expectedPayment := 886.70
	tolerance := 0.01

	if math.Abs(monthlyPayment-expectedPayment) > tolerance {
		t.Errorf("MonthlyPaymentForTerm() = %.2f, expected %.2f (diff: %.2f)",
			monthlyPayment, expectedPayment, math.Abs(monthlyPayment-expectedPayment))
	}
}

func TestScheduleAgainstReferenceSchedule(t *testing.T) {
	m := referenceModel(t)

	monthlyPayment, err := m.MonthlyPaymentForTerm(30)
	if err != nil {
		t.Fatalf("MonthlyPaymentForTerm() error = %v", err)
	}
	schedule, err := m.PaymentSchedule(monthlyPayment, 360)
	if err != nil {
		t.Fatalf("PaymentSchedule() error = %v", err)
	}
	if len(schedule) != 361 {
		t.Fatalf("Schedule should have 361 entries, got %d", len(schedule))
	}

	tolerance := 0.01

	for _, ref := range getReferenceSchedule() {
		entry := schedule[ref.Month]

		t.Run(fmt.Sprintf("Month_%d", ref.Month), func(t *testing.T) {
			if entry.Month != ref.Month {
				t.Fatalf("entry month = %d, expected %d", entry.Month, ref.Month)
			}

			if math.Abs(entry.MonthAmortization-ref.PrincipalPayment) > tolerance {
				t.Errorf("Principal payment mismatch: got %.2f, expected %.2f (diff: %.2f)",
					entry.MonthAmortization, ref.PrincipalPayment, math.Abs(entry.MonthAmortization-ref.PrincipalPayment))
			}

			if math.Abs(entry.MonthInterest-ref.Interest) > tolerance {
				t.Errorf("Interest payment mismatch: got %.2f, expected %.2f (diff: %.2f)",
					entry.MonthInterest, ref.Interest, math.Abs(entry.MonthInterest-ref.Interest))
			}

			if math.Abs(entry.RemainingLoan-ref.LoanBalance) > tolerance {
				t.Errorf("Remaining balance mismatch: got %.2f, expected %.2f (diff: %.2f)",
					entry.RemainingLoan, ref.LoanBalance, math.Abs(entry.RemainingLoan-ref.LoanBalance))
			}

			// Verify payment components add up correctly
			calculatedPayment := entry.MonthAmortization + entry.MonthInterest
			if math.Abs(calculatedPayment-monthlyPayment) > 0.01 {
				t.Errorf("Payment components don't add up: Principal(%.2f) + Interest(%.2f) = %.2f, but Payment = %.2f",
					entry.MonthAmortization, entry.MonthInterest, calculatedPayment, monthlyPayment)
			}
		})
	}
}

func TestFullScheduleConsistency(t *testing.T) {
	m := referenceModel(t)

	monthlyPayment, err := m.MonthlyPaymentForTerm(30)
	if err != nil {
		t.Fatalf("MonthlyPaymentForTerm() error = %v", err)
	}
	schedule, err := m.PaymentSchedule(monthlyPayment, 360)
	if err != nil {
		t.Fatalf("PaymentSchedule() error = %v", err)
	}

	last := schedule.Last()
	if math.Abs(last.RemainingLoan) > 0.01 {
		t.Errorf("Final balance should be approximately zero, got %.2f", last.RemainingLoan)
	}

	amortized := last.TotalAmortized - m.DownPayment()
	if math.Abs(amortized-m.Loan()) > 0.01 {
		t.Errorf("Total amortization %.2f should equal the loan %.2f", amortized, m.Loan())
	}

	totalInterest, err := m.TotalInterest(monthlyPayment)
	if err != nil {
		t.Fatalf("TotalInterest() error = %v", err)
	}
	if math.Abs(last.TotalInterestPaid-totalInterest) > 0.01 {
		t.Errorf("Scheduled interest %.2f should equal total interest %.2f", last.TotalInterestPaid, totalInterest)
	}
}
