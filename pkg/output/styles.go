package output

import "github.com/fatih/color"

// Style is a set of terminal attributes applied to a report cell.
type Style []color.Attribute

// Styles maps a report row label to the style of that row. Labels without an
// entry are printed plain.
type Styles map[string]Style

// DefaultStyles highlights the rows that matter most when comparing
// simulations.
func DefaultStyles() Styles {
	return Styles{
		LabelSimulationType:        {color.Bold, color.FgCyan},
		LabelMinimumMonthlyPayment: {color.FgYellow},
		LabelMonthlyPayment:        {color.Bold, color.FgGreen},
		LabelTerm:                  {color.FgGreen},
		LabelTotalInterestPayments: {color.FgRed},
	}
}

// Apply decorates text with the style registered for label.
func (s Styles) Apply(label, text string) string {
	style, ok := s[label]
	if !ok || len(style) == 0 {
		return text
	}
	return color.New(style...).Sprint(text)
}
