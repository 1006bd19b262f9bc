package output

import (
	"fmt"
	"io"

	"github.com/sofglide/mortgage-simulator/pkg/format"
	"github.com/sofglide/mortgage-simulator/pkg/mortgage"
)

// ScheduleColumns are the headings of the schedule report.
var ScheduleColumns = []string{
	"year",
	"month",
	"debt ratio",
	"month interest",
	"month amortization",
	"remaining loan",
	"total paid",
	"total interest paid",
	"total amortized",
	"total tax return",
}

// ScheduleReport renders a payment schedule, one row per month.
type ScheduleReport struct {
	schedule mortgage.PaymentSchedule
}

// NewScheduleReport wraps schedule for rendering.
func NewScheduleReport(schedule mortgage.PaymentSchedule) *ScheduleReport {
	return &ScheduleReport{schedule: schedule}
}

// FormatScheduleEntry formats every field of entry in column order.
func FormatScheduleEntry(entry mortgage.ScheduleEntry) []string {
	return []string{
		fmt.Sprintf("%2d", entry.Year),
		fmt.Sprintf("%2d", entry.Month),
		format.Percent(entry.DebtRatio, 2),
		format.Rounded(entry.MonthInterest),
		format.Rounded(entry.MonthAmortization),
		format.Rounded(entry.RemainingLoan),
		format.Rounded(entry.TotalPaid),
		format.Rounded(entry.TotalInterestPaid),
		format.Rounded(entry.TotalAmortized),
		format.Rounded(entry.TotalTaxReturn),
	}
}

// Records returns the column headings followed by one record per entry.
func (r *ScheduleReport) Records() [][]string {
	records := make([][]string, 0, len(r.schedule)+1)
	records = append(records, ScheduleColumns)
	for _, entry := range r.schedule {
		records = append(records, FormatScheduleEntry(entry))
	}
	return records
}

// Document returns the raw schedule.
func (r *ScheduleReport) Document() interface{} {
	return r.schedule
}

// Render writes the schedule as a bordered table.
func (r *ScheduleReport) Render(w io.Writer) {
	records := r.Records()
	table := newTable(w, len(ScheduleColumns))
	table.SetHeader(records[0])
	table.AppendBulk(records[1:])
	table.Render()
}
