package mortgage

import (
	"fmt"
	"math"

	"github.com/sofglide/mortgage-simulator/pkg/constants"
	"go.uber.org/zap"
)

// ScheduleEntry holds the values of one month of a payment schedule.
type ScheduleEntry struct {
	Year              int     `yaml:"year"`
	Month             int     `yaml:"month"`
	DebtRatio         float64 `yaml:"debtRatio"`
	MonthInterest     float64 `yaml:"monthInterest"`
	MonthAmortization float64 `yaml:"monthAmortization"`
	RemainingLoan     float64 `yaml:"remainingLoan"`
	TotalPaid         float64 `yaml:"totalPaid"`
	TotalInterestPaid float64 `yaml:"totalInterestPaid"`
	TotalAmortized    float64 `yaml:"totalAmortized"`
	TotalTaxReturn    float64 `yaml:"totalTaxReturn"`
}

// PaymentSchedule is a month-0 seed entry followed by one entry per elapsed month.
type PaymentSchedule []ScheduleEntry

// PaymentSchedule projects periodMonths of payments of monthlyPayment. A
// negative periodMonths, or one beyond the payoff term, yields the full payoff
// schedule.
func (m *Model) PaymentSchedule(monthlyPayment float64, periodMonths int) (PaymentSchedule, error) {
	termMonths, err := m.TermMonths(monthlyPayment)
	if err != nil {
		return nil, err
	}
	loanTerm := int(math.Ceil(termMonths))
	if periodMonths < 0 || periodMonths > loanTerm {
		m.logger.Debug(fmt.Sprintf("Clamping schedule period %d to payoff term %d", periodMonths, loanTerm),
			zap.String("op", "mortgage.PaymentSchedule"),
		)
		periodMonths = loanTerm
	}

	schedule := make(PaymentSchedule, 0, periodMonths+1)
	schedule = append(schedule, ScheduleEntry{
		DebtRatio:      m.LoanToValueRatio(),
		RemainingLoan:  m.Loan(),
		TotalPaid:      m.downPayment,
		TotalAmortized: m.downPayment,
	})

	monthlyRate := m.MonthlyRate()
	for month := 1; month <= periodMonths; month++ {
		previous := schedule[len(schedule)-1]
		interest := CalculateInterestPayment(previous.RemainingLoan, monthlyRate)
		amortization := monthlyPayment - interest
		remaining := previous.RemainingLoan - amortization

		schedule = append(schedule, ScheduleEntry{
			Year:              (month-1)/constants.MonthsPerYear + 1,
			Month:             month,
			DebtRatio:         remaining / m.propertyValue,
			MonthInterest:     interest,
			MonthAmortization: amortization,
			RemainingLoan:     remaining,
			TotalPaid:         previous.TotalPaid + monthlyPayment,
			TotalInterestPaid: previous.TotalInterestPaid + interest,
			TotalAmortized:    previous.TotalAmortized + amortization,
			TotalTaxReturn:    previous.TotalTaxReturn + interest*m.regime.TaxDeductionRate,
		})
	}

	return schedule, nil
}

// Last returns the final entry of the schedule.
func (s PaymentSchedule) Last() ScheduleEntry {
	if len(s) == 0 {
		return ScheduleEntry{}
	}
	return s[len(s)-1]
}
