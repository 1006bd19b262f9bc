// Package simulator runs the mortgage simulations requested by the command
// line and collects them into reports.
package simulator

import (
	"fmt"

	"github.com/sofglide/mortgage-simulator/internal/config"
	"github.com/sofglide/mortgage-simulator/pkg/constants"
	"github.com/sofglide/mortgage-simulator/pkg/mathutil"
	"github.com/sofglide/mortgage-simulator/pkg/mortgage"
	"github.com/sofglide/mortgage-simulator/pkg/output"
	"go.uber.org/zap"
)

// Simulation titles.
const (
	TitleMonthlyPayment = "monthly payment simulation"
	TitleMinimumPayment = "minimum payment simulation"
)

// Parameters are the mortgage parameters given on the command line.
type Parameters struct {
	PropertyValue float64
	DownPayment   float64
	MonthlyIncome float64
	InterestRate  float64
}

// Inputs converts the parameters to model inputs.
func (p Parameters) Inputs() mortgage.Inputs {
	return mortgage.Inputs{
		PropertyValue: p.PropertyValue,
		DownPayment:   p.DownPayment,
		YearlyIncome:  p.MonthlyIncome * constants.MonthsPerYear,
		Rate:          p.InterestRate,
	}
}

// TermTitle is the title of the simulation repaying the mortgage in termYears.
func TermTitle(termYears float64) string {
	return fmt.Sprintf("term %.1f Y", termYears)
}

// NewModel builds the mortgage of params under the configured regime. The
// interest rate is read like every other command line rate: values above
// constants.FractionRateCutoff are percentages.
func NewModel(logger *zap.Logger, conf config.Configuration, params Parameters) (*mortgage.Model, error) {
	rate, err := mathutil.NormalizeRate(params.InterestRate)
	if err != nil {
		return nil, fmt.Errorf("invalid interest rate: %w", err)
	}
	inputs := params.Inputs()
	inputs.Rate = rate

	model, err := mortgage.New(logger, inputs, conf.Regime.MortgageRegime())
	if err != nil {
		return nil, fmt.Errorf("failed to build mortgage: %w", err)
	}
	return model, nil
}

// Simulate compares paying monthlyPayment, paying the minimum, and repaying
// the mortgage in termYears. A zero monthlyPayment is simulated as the
// minimum payment. The report is only returned once every
// simulation succeeded.
func Simulate(logger *zap.Logger, conf config.Configuration, params Parameters, monthlyPayment, termYears float64, extended bool) (*output.SimulationReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	model, err := NewModel(logger, conf, params)
	if err != nil {
		return nil, err
	}

	runs := []struct {
		title string
		run   func(title string) (mortgage.Simulation, error)
	}{
		{TitleMonthlyPayment, func(title string) (mortgage.Simulation, error) {
			return model.SimulateByPayment(monthlyPayment, title)
		}},
		{TitleMinimumPayment, func(title string) (mortgage.Simulation, error) {
			return model.SimulateByPayment(0, title)
		}},
		{TermTitle(termYears), func(title string) (mortgage.Simulation, error) {
			return model.SimulateByTerm(termYears, title)
		}},
	}

	simulations := make([]mortgage.Simulation, 0, len(runs))
	for _, r := range runs {
		sim, err := r.run(r.title)
		if err != nil {
			return nil, fmt.Errorf("%s failed: %w", r.title, err)
		}
		logger.Debug(fmt.Sprintf("completed %s", r.title),
			zap.String("op", "simulator.Simulate"),
			zap.Float64("monthlyPayment", sim.MonthlyPayment),
			zap.Float64("termYears", sim.TermYears),
		)
		simulations = append(simulations, sim)
	}

	report := output.NewSimulationReport(output.SimulationReportOptions{
		Currency: conf.Output.Currency,
		Extended: extended || conf.Output.Extended,
		Styles:   output.DefaultStyles(),
	})
	for _, sim := range simulations {
		report.AddSimulation(sim)
	}
	return report, nil
}

// Schedule projects paying monthlyPayment for periodMonths, or until payoff
// when periodMonths is negative.
func Schedule(logger *zap.Logger, conf config.Configuration, params Parameters, monthlyPayment float64, periodMonths int) (*output.ScheduleReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	model, err := NewModel(logger, conf, params)
	if err != nil {
		return nil, err
	}

	schedule, err := model.PaymentSchedule(monthlyPayment, periodMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to compute payment schedule: %w", err)
	}
	last := schedule.Last()
	logger.Debug(fmt.Sprintf("computed %d scheduled months", len(schedule)-1),
		zap.String("op", "simulator.Schedule"),
		zap.Float64("remainingLoan", last.RemainingLoan),
	)
	if repaid(last) {
		logger.Debug("mortgage is repaid by the end of the schedule",
			zap.String("op", "simulator.Schedule"),
			zap.Int("year", last.Year),
		)
	}

	return output.NewScheduleReport(schedule), nil
}

// repaid reports whether the loan is paid off at entry. The final month of a
// full schedule overpays, leaving a negative balance.
func repaid(entry mortgage.ScheduleEntry) bool {
	return entry.RemainingLoan < 0 || mathutil.IsZero(entry.RemainingLoan)
}

// MinimumPayment is the smallest monthly payment allowed on principal. Both
// rates may be given as fractions or percentages.
func MinimumPayment(principal, amortizationRate, interestRate float64) (float64, error) {
	if principal < 0 {
		return 0, fmt.Errorf("%w: principal must not be negative, got %v", mortgage.ErrInvalidInput, principal)
	}
	amortization, err := mathutil.NormalizeRate(amortizationRate)
	if err != nil {
		return 0, fmt.Errorf("invalid amortization rate: %w", err)
	}
	interest, err := mathutil.NormalizeRate(interestRate)
	if err != nil {
		return 0, fmt.Errorf("invalid interest rate: %w", err)
	}
	return mortgage.MinimumPayment(principal, amortization, interest), nil
}
