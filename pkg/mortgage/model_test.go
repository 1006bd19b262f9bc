package mortgage

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const tolerance = 0.01

func referenceInputs() Inputs {
	return Inputs{
		PropertyValue: 3000000,
		DownPayment:   1000000,
		YearlyIncome:  480000,
		Rate:          1.15,
	}
}

func newModel(t *testing.T, inputs Inputs) *Model {
	t.Helper()
	m, err := New(zap.NewNop(), inputs, DefaultRegime())
	require.NoError(t, err)
	return m
}

func TestReferenceScenario(t *testing.T) {
	m := newModel(t, referenceInputs())

	assert.InDelta(t, 2000000, m.Loan(), tolerance)
	assert.InDelta(t, 0.6667, m.LoanToValueRatio(), 0.0001)
	assert.InDelta(t, 4.1667, m.LoanToIncomeRatio(), 0.0001)
	assert.InDelta(t, 0.0115, m.APR(), 1e-12)

	valueRate, err := m.LoanToValueAmortizationRate()
	require.NoError(t, err)
	assert.Equal(t, 0.01, valueRate)

	incomeRate, err := m.IncomeAmortizationRate()
	require.NoError(t, err)
	assert.Equal(t, 0.0, incomeRate)

	minRate, err := m.MinAmortizationRate()
	require.NoError(t, err)
	assert.InDelta(t, 0.01, minRate, 1e-12)

	minAmortization, err := m.MinimumAmortization()
	require.NoError(t, err)
	assert.InDelta(t, 1666.67, minAmortization, tolerance)

	assert.InDelta(t, 1916.67, m.MonthlyInterest(), tolerance)

	minPayment, err := m.MinimumMonthlyPayment()
	require.NoError(t, err)
	assert.InDelta(t, 3583.33, minPayment, tolerance)

	assert.InDelta(t, 575.0, m.TaxDeduction(), tolerance)
}

func TestNewNormalizesRate(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected float64
	}{
		{"Percentage", 1.15, 0.0115},
		{"Fraction", 0.0115, 0.0115},
		{"One is a fraction", 1.0, 1.0},
		{"Large percentage", 12, 0.12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := referenceInputs()
			inputs.Rate = tt.rate
			m := newModel(t, inputs)
			assert.InDelta(t, tt.expected, m.APR(), 1e-12)
		})
	}
}

func TestNewRejectsInvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Inputs)
	}{
		{"Zero property value", func(in *Inputs) { in.PropertyValue = 0 }},
		{"Negative income", func(in *Inputs) { in.YearlyIncome = -1 }},
		{"Zero rate", func(in *Inputs) { in.Rate = 0 }},
		{"Rate above 100", func(in *Inputs) { in.Rate = 150 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := referenceInputs()
			tt.mutate(&inputs)
			m, err := New(nil, inputs, DefaultRegime())
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got %v", err)
		})
	}
}

func TestLoanPlusDownPaymentIsPropertyValue(t *testing.T) {
	for _, downPayment := range []float64{0, 1, 150000, 999999.5, 1000000} {
		m := newModel(t, Inputs{PropertyValue: 1000000, DownPayment: downPayment, YearlyIncome: 500000, Rate: 2})
		assert.InDelta(t, m.PropertyValue(), m.Loan()+m.DownPayment(), 1e-6)
	}
}

func TestLoanToValueTiers(t *testing.T) {
	tests := []struct {
		name        string
		downPayment float64
		expected    float64
	}{
		{"Below half", 600000, 0.0},
		{"Exactly half", 500000, 0.01},
		{"Between half and 0.7", 400000, 0.01},
		{"Exactly 0.7", 300000, 0.02},
		{"Exactly 0.85", 150000, 0.02},
		{"Above 0.85", 50000, 0.02},
		{"No down payment", 0, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t, Inputs{PropertyValue: 1000000, DownPayment: tt.downPayment, YearlyIncome: 1000000, Rate: 1.5})
			rate, err := m.LoanToValueAmortizationRate()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rate)
		})
	}
}

func TestIncomeTiers(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		expected float64
	}{
		{"Below 4.5", 200000, 0.0},
		{"Exactly 4.5", 100000, 0.01},
		{"Above 4.5", 50000, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t, Inputs{PropertyValue: 1000000, DownPayment: 550000, YearlyIncome: tt.income, Rate: 1.5})
			rate, err := m.IncomeAmortizationRate()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rate)
		})
	}
}

func TestNegativeRatiosFailReactively(t *testing.T) {
	m := newModel(t, Inputs{PropertyValue: 1000000, DownPayment: 1200000, YearlyIncome: 500000, Rate: 1.5})

	_, err := m.LoanToValueAmortizationRate()
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.IncomeAmortizationRate()
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.MinimumMonthlyPayment()
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCustomRegime(t *testing.T) {
	regime := DefaultRegime()
	regime.LoanToValueAboveRate = 0.03
	regime.TaxDeductionRate = 0.2

	m, err := New(nil, Inputs{PropertyValue: 1000000, DownPayment: 100000, YearlyIncome: 1000000, Rate: 1.2}, regime)
	require.NoError(t, err)

	rate, err := m.LoanToValueAmortizationRate()
	require.NoError(t, err)
	assert.Equal(t, 0.03, rate)
	assert.InDelta(t, 900000*0.001*0.2, m.TaxDeduction(), 1e-9)
}

func TestLoanToValueWarning(t *testing.T) {
	tests := []struct {
		name        string
		downPayment float64
		expectWarn  bool
	}{
		{"Above threshold", 100000, true},
		{"Exactly at threshold", 150000, false},
		{"Below threshold", 500000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			_, err := New(zap.New(core), Inputs{PropertyValue: 1000000, DownPayment: tt.downPayment, YearlyIncome: 500000, Rate: 1.5}, DefaultRegime())
			require.NoError(t, err)
			assert.Equal(t, tt.expectWarn, logs.FilterMessageSnippet("loan to value ratio is too large").Len() == 1)
		})
	}
}

func TestTermMonths(t *testing.T) {
	m := newModel(t, referenceInputs())

	months, err := m.TermMonths(10000)
	require.NoError(t, err)
	assert.Greater(t, months, 200.0)
	assert.Less(t, months, 240.0)

	years, err := m.TermYears(10000)
	require.NoError(t, err)
	assert.InDelta(t, months/12, years, 1e-9)

	_, err = m.TermMonths(m.MonthlyInterest())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.TermMonths(m.MonthlyInterest() - 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMonthlyPaymentForTermRoundTrip(t *testing.T) {
	m := newModel(t, referenceInputs())

	for _, term := range []float64{1, 5, 10, 25, 40.5, 100} {
		payment, err := m.MonthlyPaymentForTerm(term)
		require.NoError(t, err)
		years, err := m.TermYears(payment)
		require.NoError(t, err)
		assert.InDelta(t, term, years, 1e-6, "term %v", term)
	}

	_, err := m.MonthlyPaymentForTerm(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTotals(t *testing.T) {
	m := newModel(t, referenceInputs())

	for _, payment := range []float64{2000, 3583.34, 10000, 50000} {
		total, err := m.TotalPayment(payment)
		require.NoError(t, err)
		interest, err := m.TotalInterest(payment)
		require.NoError(t, err)
		assert.InDelta(t, m.Loan(), total-interest, 1e-6)

		ratio, err := m.InterestToPrincipalRatio(payment)
		require.NoError(t, err)
		assert.InDelta(t, interest/m.Loan(), ratio, 1e-12)
	}
}

func TestAmortization(t *testing.T) {
	m := newModel(t, referenceInputs())

	assert.InDelta(t, 10000-1916.67, m.Amortization(10000), tolerance)
	assert.InDelta(t, (10000-1916.6667)/2000000*12, m.AmortizationRate(10000), 1e-6)
}

func TestAPY(t *testing.T) {
	m := newModel(t, referenceInputs())
	assert.InDelta(t, math.Pow(1+0.0115/12, 12)-1, m.APY(), 1e-12)
	assert.Greater(t, m.APY(), m.APR())
}

func TestMaximumTerm(t *testing.T) {
	m := newModel(t, referenceInputs())

	months, err := m.MaximumTermMonths()
	require.NoError(t, err)
	years, err := m.MaximumTermYears()
	require.NoError(t, err)
	assert.InDelta(t, months/12, years, 1e-9)

	minPayment, err := m.MinimumMonthlyPayment()
	require.NoError(t, err)
	term, err := m.TermYears(minPayment)
	require.NoError(t, err)
	assert.InDelta(t, term, years, 1e-9)
}

func TestMaximumTermWithoutAmortizationRequirement(t *testing.T) {
	m := newModel(t, Inputs{PropertyValue: 3000000, DownPayment: 2000000, YearlyIncome: 480000, Rate: 1.5})

	_, err := m.MaximumTermYears()
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMinimumPayment(t *testing.T) {
	assert.InDelta(t, 4166.67, MinimumPayment(2000000, 0.01, 0.015), tolerance)
	assert.InDelta(t, 2500, MinimumPayment(2000000, 0, 0.015), tolerance)
}

func TestCalculateMonthlyPaymentZeroRate(t *testing.T) {
	assert.InDelta(t, 1000, CalculateMonthlyPayment(120000, 0, 120), 1e-9)
}
