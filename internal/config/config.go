// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/quantfolio/quantfolio/pkg/constants"
	"github.com/quantfolio/quantfolio/pkg/datetime"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for quantfolio.
type Configuration struct {
	Portfolio PortfolioConfig
	Logging   LoggingConfig  `yaml:"logging,omitempty"`
	Output    OutputConfig   `yaml:"output,omitempty"`
	Chart     ChartConfig    `yaml:"chart,omitempty"`
	Database  DatabaseConfig `yaml:"database,omitempty"`
}

// PortfolioConfig holds the asset universe and simulation parameters.
type PortfolioConfig struct {
	Tickers             []string
	StartDate           string
	EndDate             string
	RiskFreeRate        float64
	PeriodsPerYear      int
	SimulationsPerAsset int
	Seed                int64
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ChartConfig holds chart rendering options. An empty OutputFile disables
// rendering.
type ChartConfig struct {
	OutputFile string `yaml:"outputFile,omitempty"`
}

// DatabaseConfig holds run-history persistence options. An empty SQLitePath
// disables persistence.
type DatabaseConfig struct {
	SQLitePath string `yaml:"sqlitePath,omitempty"`
}

// ConfigurationError indicates an invalid configuration value.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Field, e.Reason)
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (c *Configuration) applyDefaults() {
	if c.Portfolio.RiskFreeRate == 0 {
		c.Portfolio.RiskFreeRate = constants.DefaultRiskFreeRate
	}
	if c.Portfolio.PeriodsPerYear == 0 {
		c.Portfolio.PeriodsPerYear = constants.DefaultPeriodsPerYear
	}
	if c.Portfolio.SimulationsPerAsset == 0 {
		c.Portfolio.SimulationsPerAsset = constants.DefaultSimulationsPerAsset
	}
	if c.Portfolio.Seed == 0 {
		c.Portfolio.Seed = constants.DefaultSeed
	}
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
}

// NormalizedTickers returns the configured tickers trimmed, uppercased, and
// deduplicated, preserving first-occurrence order.
func (c *Configuration) NormalizedTickers() []string {
	seen := make(map[string]bool)
	var tickers []string
	for _, t := range c.Portfolio.Tickers {
		up := strings.ToUpper(strings.TrimSpace(t))
		if up != "" && !seen[up] {
			seen[up] = true
			tickers = append(tickers, up)
		}
	}
	return tickers
}

// DateRange parses the configured start and end dates.
func (c *Configuration) DateRange() (time.Time, time.Time, error) {
	start, err := datetime.ParseDate(c.Portfolio.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, &ConfigurationError{Field: "portfolio.startDate", Reason: err.Error()}
	}
	end, err := datetime.ParseDate(c.Portfolio.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, &ConfigurationError{Field: "portfolio.endDate", Reason: err.Error()}
	}
	return start, end, nil
}

// Validate checks the hard invariants of the configuration and returns a
// ConfigurationError for the first violation found.
func (c *Configuration) Validate() error {
	if len(c.NormalizedTickers()) == 0 {
		return &ConfigurationError{Field: "portfolio.tickers", Reason: "at least one ticker is required"}
	}

	start, end, err := c.DateRange()
	if err != nil {
		return err
	}
	if !end.After(start) {
		return &ConfigurationError{Field: "portfolio.endDate", Reason: "end date must be after start date"}
	}

	if c.Portfolio.RiskFreeRate < -1 || c.Portfolio.RiskFreeRate > 1 {
		return &ConfigurationError{Field: "portfolio.riskFreeRate", Reason: "must be between -1 and 1"}
	}
	if c.Portfolio.PeriodsPerYear < 1 {
		return &ConfigurationError{Field: "portfolio.periodsPerYear", Reason: "must be a positive integer"}
	}
	if c.Portfolio.SimulationsPerAsset < 1 {
		return &ConfigurationError{Field: "portfolio.simulationsPerAsset", Reason: "must be a positive integer"}
	}

	return nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for suspicious but legal values.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.NormalizedTickers()) != len(c.Portfolio.Tickers) {
		warnings = append(warnings, "ticker list contained duplicates or blank entries; they were dropped")
	}
	if len(c.NormalizedTickers()) == 1 {
		warnings = append(warnings, "single-asset universe: every portfolio holds 100% of one asset")
	}
	if c.Portfolio.SimulationsPerAsset > 100000 {
		warnings = append(warnings, fmt.Sprintf("simulationsPerAsset of %d is very large and may be slow", c.Portfolio.SimulationsPerAsset))
	}
	if c.Portfolio.RiskFreeRate > 0.15 {
		warnings = append(warnings, fmt.Sprintf("risk-free rate of %.2f is unusually high", c.Portfolio.RiskFreeRate))
	}

	return warnings
}
