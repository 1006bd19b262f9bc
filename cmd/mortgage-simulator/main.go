package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sofglide/mortgage-simulator/internal/config"
	"github.com/sofglide/mortgage-simulator/internal/simulator"
	"github.com/sofglide/mortgage-simulator/pkg/constants"
	"github.com/sofglide/mortgage-simulator/pkg/output"
	"github.com/sofglide/mortgage-simulator/pkg/validation"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// application carries the state shared by every command once the global
// flags have been processed.
type application struct {
	conf         *config.Configuration
	logger       *zap.Logger
	outputFormat string
}

func newApp(w io.Writer) *cli.App {
	state := &application{logger: zap.NewNop()}

	return &cli.App{
		Name:   "mortgage-simulator",
		Usage:  "simulate mortgage payments, terms and payment schedules",
		Writer: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: constants.DefaultConfigFile,
				Usage: "path to configuration file",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"log_level"},
				Usage:   "log level override (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:    "output-format",
				Aliases: []string{"output_format"},
				Usage:   "type of output override: pretty, csv, yaml",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"no_color"},
				Usage:   "disable colored output",
			},
		},
		Before: state.setup,
		After:  state.teardown,
		Commands: []*cli.Command{
			state.minimumPaymentCommand(),
			state.simulateCommand(),
			state.scheduleCommand(),
			state.configCommand(),
		},
	}
}

// setup loads the configuration and initializes logging.
func (a *application) setup(c *cli.Context) error {
	configLocation := c.String("config")
	conf, err := config.LoadConfiguration(configLocation)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", configLocation, err)
	}
	a.conf = conf

	logger, err := initializeLogger(conf.Logging, c.String("log-level"))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	// CLI override takes precedence over config
	a.outputFormat = conf.Output.Format
	if flag := c.String("output-format"); flag != "" {
		a.outputFormat = flag
	}
	if a.outputFormat == "" {
		a.outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(a.outputFormat); err != nil {
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		a.logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if c.Bool("no-color") || !conf.Output.Color {
		color.NoColor = true
	}

	return nil
}

func (a *application) teardown(_ *cli.Context) error {
	_ = a.logger.Sync()
	return nil
}

func (a *application) minimumPaymentCommand() *cli.Command {
	return &cli.Command{
		Name:    "minimum-payment",
		Aliases: []string{"minimum_payment"},
		Usage:   "compute the minimum monthly payment of a principal",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "principal",
				Aliases:  []string{"p"},
				Usage:    "borrowed amount",
				Required: true,
			},
			&cli.Float64Flag{
				Name:     "amortization-rate",
				Aliases:  []string{"a", "amortization_rate"},
				Usage:    "yearly amortization rate, as a fraction or a percentage",
				Required: true,
			},
			&cli.Float64Flag{
				Name:    "interest-rate",
				Aliases: []string{"i", "interest_rate"},
				Value:   constants.DefaultInterestRate,
				Usage:   "yearly interest rate, as a fraction or a percentage",
			},
		},
		Action: func(c *cli.Context) error {
			interestRate := a.conf.Defaults.InterestRate
			if c.IsSet("interest-rate") {
				interestRate = c.Float64("interest-rate")
			}

			payment, err := simulator.MinimumPayment(float64(c.Int("principal")), c.Float64("amortization-rate"), interestRate)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.App.Writer, "Minimum monthly payment: %.0f %s\n", payment, strings.ToUpper(a.conf.Output.Currency))
			return err
		},
	}
}

// mortgageFlags are the flags describing the mortgage, shared by simulate and
// schedule.
func mortgageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     "property-value",
			Aliases:  []string{"v", "property_value"},
			Usage:    "value of the property",
			Required: true,
		},
		&cli.IntFlag{
			Name:    "down-payment",
			Aliases: []string{"d", "down_payment"},
			Value:   constants.DefaultDownPayment,
			Usage:   "down payment",
		},
		&cli.Float64Flag{
			Name:    "interest-rate",
			Aliases: []string{"r", "interest_rate"},
			Value:   constants.DefaultInterestRate,
			Usage:   "yearly interest rate, as a fraction or a percentage",
		},
		&cli.IntFlag{
			Name:    "monthly-income",
			Aliases: []string{"i", "monthly_income"},
			Value:   constants.DefaultMonthlyIncome,
			Usage:   "monthly income before tax",
		},
		&cli.IntFlag{
			Name:    "monthly-payment",
			Aliases: []string{"p", "monthly_payment"},
			Value:   constants.DefaultMonthlyPayment,
			Usage:   "monthly mortgage payment",
		},
	}
}

// intOrDefault reads an integer flag, falling back to the configured default
// when the flag is absent.
func intOrDefault(c *cli.Context, name string, fallback float64) float64 {
	if c.IsSet(name) {
		return float64(c.Int(name))
	}
	return fallback
}

func (a *application) mortgageParameters(c *cli.Context) simulator.Parameters {
	interestRate := a.conf.Defaults.InterestRate
	if c.IsSet("interest-rate") {
		interestRate = c.Float64("interest-rate")
	}
	return simulator.Parameters{
		PropertyValue: float64(c.Int("property-value")),
		DownPayment:   intOrDefault(c, "down-payment", a.conf.Defaults.DownPayment),
		MonthlyIncome: intOrDefault(c, "monthly-income", a.conf.Defaults.MonthlyIncome),
		InterestRate:  interestRate,
	}
}

func (a *application) simulateCommand() *cli.Command {
	flags := append(mortgageFlags(),
		&cli.IntFlag{
			Name:    "mortgage-term",
			Aliases: []string{"t", "mortgage_term"},
			Value:   constants.DefaultMortgageTermYears,
			Usage:   "mortgage term in years",
		},
		&cli.BoolFlag{
			Name:  "extended",
			Usage: "include minimum amortization and tax deduction rows",
		},
	)

	return &cli.Command{
		Name:  "simulate",
		Usage: "compare a monthly payment with the minimum payment and a fixed term",
		Flags: flags,
		Action: func(c *cli.Context) error {
			term := float64(a.conf.Defaults.MortgageTermYears)
			if c.IsSet("mortgage-term") {
				term = float64(c.Int("mortgage-term"))
			}

			report, err := simulator.Simulate(a.logger, *a.conf, a.mortgageParameters(c),
				intOrDefault(c, "monthly-payment", a.conf.Defaults.MonthlyPayment), term, c.Bool("extended"))
			if err != nil {
				a.logger.Error("failed to simulate mortgage",
					zap.String("op", "main"),
					zap.Error(err),
				)
				return err
			}
			return output.Write(c.App.Writer, a.outputFormat, report)
		},
	}
}

func (a *application) scheduleCommand() *cli.Command {
	flags := append(mortgageFlags(),
		&cli.IntFlag{
			Name:    "period-months",
			Aliases: []string{"period_months"},
			Value:   constants.DefaultPeriodMonths,
			Usage:   "number of months to project, -1 until payoff",
		},
	)

	return &cli.Command{
		Name:  "schedule",
		Usage: "print the month by month payment schedule",
		Flags: flags,
		Action: func(c *cli.Context) error {
			periodMonths := a.conf.Defaults.PeriodMonths
			if c.IsSet("period-months") {
				periodMonths = c.Int("period-months")
			}

			report, err := simulator.Schedule(a.logger, *a.conf, a.mortgageParameters(c),
				intOrDefault(c, "monthly-payment", a.conf.Defaults.MonthlyPayment), periodMonths)
			if err != nil {
				a.logger.Error("failed to compute payment schedule",
					zap.String("op", "main"),
					zap.Error(err),
				)
				return err
			}
			return output.Write(c.App.Writer, a.outputFormat, report)
		},
	}
}

func (a *application) configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "print the effective configuration",
		Action: func(c *cli.Context) error {
			return a.conf.Export(c.App.Writer)
		},
	}
}

// fatalLine renders err as the JSON log line printed when the command fails.
func fatalLine(err error) string {
	line, _ := json.Marshal(map[string]string{
		"op":    "main",
		"level": "fatal",
		"msg":   err.Error(),
	})
	return string(line)
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, fatalLine(err))
		os.Exit(1)
	}
}
