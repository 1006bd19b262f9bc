// Package constants provides shared constants for the mortgage-simulator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MaxRatePercentage is the largest accepted rate when given as a percentage
	MaxRatePercentage = 100.0

	// FractionRateCutoff separates fractions from percentages on the command line:
	// values above it are read as percentages.
	FractionRateCutoff = 0.5

	// ModelFractionRateCutoff separates fractions from percentages for the model
	// constructor.
	ModelFractionRateCutoff = 1.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Regulatory defaults
const (
	// DefaultLoanToValueWarning is the loan-to-value ratio above which a warning is logged
	DefaultLoanToValueWarning = 0.85

	// DefaultTaxDeductionRate is the share of interest returned as tax deduction
	DefaultTaxDeductionRate = 0.30
)

// Command defaults
const (
	// DefaultDownPayment is the default down payment
	DefaultDownPayment = 1000000

	// DefaultInterestRate is the default interest rate as a percentage
	DefaultInterestRate = 1.5

	// DefaultMortgageTermYears is the default mortgage term for term simulations
	DefaultMortgageTermYears = 25

	// DefaultMonthlyIncome is the default monthly income
	DefaultMonthlyIncome = 40000

	// DefaultMonthlyPayment is the default monthly payment
	DefaultMonthlyPayment = 10000

	// DefaultPeriodMonths requests the full payoff schedule
	DefaultPeriodMonths = -1

	// DefaultCurrency is the currency suffix of monetary values
	DefaultCurrency = "sek"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "mortgage-simulator.yaml"

	// EnvPrefix prefixes environment variable overrides
	EnvPrefix = "MORTGAGE"
)

// Logging defaults
const (
	// DefaultLogLevel is the log level when neither config nor flag set one
	DefaultLogLevel = "info"

	// DefaultLogFormat is the log encoding of the command line tool
	DefaultLogFormat = "console"
)
