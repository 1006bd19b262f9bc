// Package output renders simulation comparisons and payment schedules.
package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/sofglide/mortgage-simulator/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Report is a renderable result table.
type Report interface {
	// Render writes a bordered text table.
	Render(w io.Writer)
	// Records returns the header followed by the data rows, unstyled.
	Records() [][]string
	// Document returns the raw values for structured encodings.
	Document() interface{}
}

// Write renders report in the requested output format.
func Write(w io.Writer, outputFormat string, report Report) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		report.Render(w)
		return nil
	case constants.OutputFormatCSV:
		return writeCSV(w, report.Records())
	case constants.OutputFormatYAML:
		return writeYAML(w, report.Document())
	}
	return fmt.Errorf("unsupported output format %s", outputFormat)
}

// newTable returns a double-bordered table writing to w. The first column is
// left-justified and every other column right-justified.
func newTable(w io.Writer, columns int) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetCenterSeparator("╬")
	table.SetColumnSeparator("║")
	table.SetRowSeparator("═")

	alignment := make([]int, columns)
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_RIGHT
	}
	if columns > 0 {
		alignment[0] = tablewriter.ALIGN_LEFT
	}
	table.SetColumnAlignment(alignment)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	return table
}

func writeCSV(w io.Writer, records [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, document interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(document); err != nil {
		return fmt.Errorf("failed to write yaml: %w", err)
	}
	return encoder.Close()
}
