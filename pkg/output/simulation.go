package output

import (
	"io"

	"github.com/sofglide/mortgage-simulator/pkg/format"
	"github.com/sofglide/mortgage-simulator/pkg/mortgage"
)

// Simulation report row labels.
const (
	LabelSimulationType         = "Simulation type"
	LabelPropertyValue          = "Property value"
	LabelDownPayment            = "Down payment"
	LabelLoan                   = "Loan"
	LabelInterestRate           = "Interest rate"
	LabelLoanToValueRatio       = "Loan to value ratio"
	LabelLoanToIncomeRatio      = "Loan to income ratio"
	LabelMinAmortizationRate    = "Minimum amortization rate"
	LabelMinimumAmortization    = "Minimum amortization"
	LabelMinimumMonthlyPayment  = "Minimum monthly payment"
	LabelMaximumTerm            = "Maximum term"
	LabelMonthlyPayment         = "Monthly payment"
	LabelInterestPayment        = "Interest payment"
	LabelTaxDeduction           = "Tax deduction"
	LabelInterestNetOfTax       = "Interest net of tax"
	LabelAmortization           = "Amortization"
	LabelAmortizationRate       = "Amortization rate"
	LabelTerm                   = "Term"
	LabelTotalPrincipalPayments = "Total principal payments"
	LabelTotalInterestPayments  = "Total interest payments"
	LabelTotalPayments          = "Total payments"
	LabelInterestToPrincipal    = "Interest to principal"
	LabelAPY                    = "APY"
	LabelAPR                    = "APR"
)

// Metric is one row of the simulation comparison report.
type Metric struct {
	Label string
	// Extended rows are only shown in the extended report.
	Extended bool
	Value    func(sim mortgage.Simulation, currency string) string
}

func money(pick func(mortgage.Simulation) float64) func(mortgage.Simulation, string) string {
	return func(sim mortgage.Simulation, currency string) string {
		return format.Money(pick(sim), currency)
	}
}

func percent(pick func(mortgage.Simulation) float64, decimals int) func(mortgage.Simulation, string) string {
	return func(sim mortgage.Simulation, _ string) string {
		return format.Percent(pick(sim), decimals)
	}
}

// Metrics lists every simulation row in display order.
var Metrics = []Metric{
	{Label: LabelSimulationType, Value: func(sim mortgage.Simulation, _ string) string { return sim.Title }},
	{Label: LabelPropertyValue, Value: money(func(s mortgage.Simulation) float64 { return s.PropertyValue })},
	{Label: LabelDownPayment, Value: money(func(s mortgage.Simulation) float64 { return s.DownPayment })},
	{Label: LabelLoan, Value: money(func(s mortgage.Simulation) float64 { return s.Loan })},
	{Label: LabelInterestRate, Value: percent(func(s mortgage.Simulation) float64 { return s.InterestRate }, 2)},
	{Label: LabelLoanToValueRatio, Value: percent(func(s mortgage.Simulation) float64 { return s.LoanToValueRatio }, 1)},
	{Label: LabelLoanToIncomeRatio, Value: func(sim mortgage.Simulation, _ string) string { return format.Ratio(sim.LoanToIncomeRatio) }},
	{Label: LabelMinAmortizationRate, Value: percent(func(s mortgage.Simulation) float64 { return s.MinAmortizationRate }, 2)},
	{Label: LabelMinimumAmortization, Extended: true, Value: money(func(s mortgage.Simulation) float64 { return s.MinimumAmortization })},
	{Label: LabelMinimumMonthlyPayment, Value: money(func(s mortgage.Simulation) float64 { return s.MinimumMonthlyPayment })},
	{Label: LabelMaximumTerm, Value: func(sim mortgage.Simulation, _ string) string { return format.Years(sim.MaximumTermYears, "Y") }},
	{Label: LabelMonthlyPayment, Value: money(func(s mortgage.Simulation) float64 { return s.MonthlyPayment })},
	{Label: LabelInterestPayment, Value: money(func(s mortgage.Simulation) float64 { return s.MonthlyInterest })},
	{Label: LabelTaxDeduction, Extended: true, Value: money(func(s mortgage.Simulation) float64 { return s.TaxDeduction })},
	{Label: LabelInterestNetOfTax, Extended: true, Value: money(func(s mortgage.Simulation) float64 { return s.InterestNetOfTax })},
	{Label: LabelAmortization, Value: money(func(s mortgage.Simulation) float64 { return s.Amortization })},
	{Label: LabelAmortizationRate, Value: percent(func(s mortgage.Simulation) float64 { return s.AmortizationRate }, 2)},
	{Label: LabelTerm, Value: func(sim mortgage.Simulation, _ string) string { return format.Years(sim.TermYears, "Years") }},
	{Label: LabelTotalPrincipalPayments, Value: money(func(s mortgage.Simulation) float64 { return s.TotalPrincipal })},
	{Label: LabelTotalInterestPayments, Value: money(func(s mortgage.Simulation) float64 { return s.TotalInterest })},
	{Label: LabelTotalPayments, Value: money(func(s mortgage.Simulation) float64 { return s.TotalPayment })},
	{Label: LabelInterestToPrincipal, Value: percent(func(s mortgage.Simulation) float64 { return s.InterestToPrincipal }, 2)},
	{Label: LabelAPY, Value: percent(func(s mortgage.Simulation) float64 { return s.APY }, 2)},
	{Label: LabelAPR, Value: percent(func(s mortgage.Simulation) float64 { return s.APR }, 2)},
}

// SelectMetrics returns the standard rows, plus the extended ones if requested.
func SelectMetrics(extended bool) []Metric {
	var selected []Metric
	for _, metric := range Metrics {
		if metric.Extended && !extended {
			continue
		}
		selected = append(selected, metric)
	}
	return selected
}

// SimulationFields formats sim as a flat list ordered like metrics.
func SimulationFields(sim mortgage.Simulation, metrics []Metric, currency string) []string {
	fields := make([]string, len(metrics))
	for i, metric := range metrics {
		fields[i] = metric.Value(sim, currency)
	}
	return fields
}

// SimulationReportOptions configures a SimulationReport.
type SimulationReportOptions struct {
	Currency string
	Extended bool
	Styles   Styles
}

// SimulationReport accumulates one column per simulation.
type SimulationReport struct {
	metrics     []Metric
	currency    string
	styles      Styles
	simulations []mortgage.Simulation
	columns     [][]string
}

// NewSimulationReport returns an empty report.
func NewSimulationReport(opts SimulationReportOptions) *SimulationReport {
	return &SimulationReport{
		metrics:  SelectMetrics(opts.Extended),
		currency: opts.Currency,
		styles:   opts.Styles,
	}
}

// AddSimulation appends sim as a new column.
func (r *SimulationReport) AddSimulation(sim mortgage.Simulation) {
	r.simulations = append(r.simulations, sim)
	r.columns = append(r.columns, SimulationFields(sim, r.metrics, r.currency))
}

// Size is the number of simulations in the report.
func (r *SimulationReport) Size() int {
	return len(r.columns)
}

// Records returns one record per metric: the label followed by the value of
// every simulation.
func (r *SimulationReport) Records() [][]string {
	records := make([][]string, len(r.metrics))
	for i, metric := range r.metrics {
		record := make([]string, 0, len(r.columns)+1)
		record = append(record, metric.Label)
		for _, column := range r.columns {
			record = append(record, column[i])
		}
		records[i] = record
	}
	return records
}

// Document returns the raw simulations.
func (r *SimulationReport) Document() interface{} {
	return r.simulations
}

// Render writes the report as a bordered table. The simulation type row is
// the table heading.
func (r *SimulationReport) Render(w io.Writer) {
	records := r.Records()
	if len(records) == 0 {
		return
	}

	styled := make([][]string, len(records))
	for i, record := range records {
		label := record[0]
		row := make([]string, len(record))
		for j, cell := range record {
			row[j] = r.styles.Apply(label, cell)
		}
		styled[i] = row
	}

	table := newTable(w, r.Size()+1)
	table.SetHeader(styled[0])
	table.AppendBulk(styled[1:])
	table.Render()
}
