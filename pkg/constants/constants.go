// Package constants provides shared constants for the quantfolio application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DefaultPeriodsPerYear is the default annualization factor (monthly bars)
	DefaultPeriodsPerYear = 12

	// DefaultRiskFreeRate is the default annualized risk-free rate
	DefaultRiskFreeRate = 0.02
)

// Simulation constants
const (
	// DefaultSimulationsPerAsset is the default number of random portfolios
	// generated per asset in the universe
	DefaultSimulationsPerAsset = 100

	// DefaultSeed is the default random seed, fixed for reproducible reports
	DefaultSeed int64 = 42

	// DefaultCMLPoints is the default number of capital market line samples
	DefaultCMLPoints = 100

	// WeightSumTolerance is the tolerance for weight vectors summing to one
	WeightSumTolerance = 1e-9

	// RadicandTolerance is how far below zero a portfolio variance may fall
	// before it is treated as a numerical fault rather than rounding noise
	RadicandTolerance = 1e-12
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Market data constants
const (
	// DefaultFetchConcurrency bounds concurrent per-ticker downloads
	DefaultFetchConcurrency = 4

	// MinObservations is the minimum number of price observations required
	// per asset before return differencing
	MinObservations = 2
)
