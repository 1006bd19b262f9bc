// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/sofglide/mortgage-simulator/pkg/constants"
	"github.com/sofglide/mortgage-simulator/pkg/validation"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for mortgage-simulator.
type Configuration struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`
	Regime   RegimeConfig   `mapstructure:"regime" yaml:"regime"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv, yaml
	Currency string `mapstructure:"currency" yaml:"currency,omitempty"`
	Color    bool   `mapstructure:"color" yaml:"color"`
	Extended bool   `mapstructure:"extended" yaml:"extended"`
}

// DefaultsConfig holds the default values of command flags.
type DefaultsConfig struct {
	DownPayment       float64 `mapstructure:"downPayment" yaml:"downPayment"`
	InterestRate      float64 `mapstructure:"interestRate" yaml:"interestRate"`
	MortgageTermYears int     `mapstructure:"mortgageTermYears" yaml:"mortgageTermYears"`
	MonthlyIncome     float64 `mapstructure:"monthlyIncome" yaml:"monthlyIncome"`
	MonthlyPayment    float64 `mapstructure:"monthlyPayment" yaml:"monthlyPayment"`
	PeriodMonths      int     `mapstructure:"periodMonths" yaml:"periodMonths"`
}

// defaults lists every scalar key with its default value. Registering them
// lets environment variables override keys absent from the file.
var defaults = map[string]interface{}{
	"logging.level":                constants.DefaultLogLevel,
	"logging.format":               constants.DefaultLogFormat,
	"logging.outputFile":           "",
	"output.format":                constants.OutputFormatPretty,
	"output.currency":              constants.DefaultCurrency,
	"output.color":                 true,
	"output.extended":              false,
	"defaults.downPayment":         constants.DefaultDownPayment,
	"defaults.interestRate":        constants.DefaultInterestRate,
	"defaults.mortgageTermYears":   constants.DefaultMortgageTermYears,
	"defaults.monthlyIncome":       constants.DefaultMonthlyIncome,
	"defaults.monthlyPayment":      constants.DefaultMonthlyPayment,
	"defaults.periodMonths":        constants.DefaultPeriodMonths,
	"regime.loanToValueAboveRate":  defaultLoanToValueAboveRate,
	"regime.loanToIncomeAboveRate": defaultLoanToIncomeAboveRate,
	"regime.loanToValueWarning":    constants.DefaultLoanToValueWarning,
	"regime.taxDeductionRate":      constants.DefaultTaxDeductionRate,
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the default configuration.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if configPath != "" {
		_, err := os.Stat(configPath)
		switch {
		case err == nil:
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %s", err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	configuration.Regime.fillTiers()

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		warnings = append(warnings, err.Error())
	}
	if strings.TrimSpace(c.Output.Currency) == "" {
		warnings = append(warnings, "Output currency is empty, monetary values will have no suffix")
	}
	if c.Defaults.PeriodMonths < constants.DefaultPeriodMonths {
		warnings = append(warnings, fmt.Sprintf("Default period months %d is below %d and will request the full schedule",
			c.Defaults.PeriodMonths, constants.DefaultPeriodMonths))
	}

	regime := c.Regime.validationConfig()
	warnings = append(warnings, regime.ValidateAll()...)

	return warnings
}

// Export writes the configuration as YAML.
func (c *Configuration) Export(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to export configuration: %w", err)
	}
	return encoder.Close()
}
