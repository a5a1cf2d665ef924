package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/quantfolio/quantfolio/internal/chart"
	"github.com/quantfolio/quantfolio/internal/config"
	"github.com/quantfolio/quantfolio/internal/marketdata"
	"github.com/quantfolio/quantfolio/internal/portfolio"
	"github.com/quantfolio/quantfolio/internal/recorder"
	"github.com/quantfolio/quantfolio/pkg/constants"
	"github.com/quantfolio/quantfolio/pkg/output"
	"github.com/quantfolio/quantfolio/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	chartFile := flag.String("chart", "", "chart output file override (PNG)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	tickers := conf.NormalizedTickers()
	start, end, err := conf.DateRange()
	if err != nil {
		logger.Fatal("failed to parse date range",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Fetch price history; retrieval failures surface here, before the core runs.
	client := marketdata.NewClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	prices, err := client.FetchAll(ctx, tickers, start, end)
	if err != nil {
		logger.Fatal("failed to retrieve market data",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	series := marketdata.ToReturnSeries(prices)

	// Estimate annualized statistics from the return series.
	stats, err := portfolio.EstimateStatistics(series, conf.Portfolio.PeriodsPerYear)
	if err != nil {
		logger.Fatal("failed to estimate statistics",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Run the Monte Carlo simulation.
	result, err := portfolio.RunSimulation(logger, stats, portfolio.SimulationOptions{
		RiskFreeRate:        conf.Portfolio.RiskFreeRate,
		SimulationsPerAsset: conf.Portfolio.SimulationsPerAsset,
		Seed:                conf.Portfolio.Seed,
		CMLPoints:           constants.DefaultCMLPoints,
	})
	if err != nil {
		logger.Fatal("failed to run simulation",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Persist run history when a database is configured.
	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if conf.Database.SQLitePath != "" {
		sqlRec, err := recorder.NewSQLiteRecorder(conf.Database.SQLitePath)
		if err != nil {
			logger.Fatal("failed to open run history database",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		rec = sqlRec
	}
	defer func() {
		_ = rec.Close()
	}()

	err = rec.RecordRun(&recorder.RunRecord{
		Timestamp:           time.Now(),
		Tickers:             tickers,
		StartDate:           conf.Portfolio.StartDate,
		EndDate:             conf.Portfolio.EndDate,
		RiskFreeRate:        conf.Portfolio.RiskFreeRate,
		SimulationsPerAsset: conf.Portfolio.SimulationsPerAsset,
		Seed:                conf.Portfolio.Seed,
		Optimal:             result.Optimal,
		MinVariance:         result.MinVariance,
		Assets:              result.Assets,
	})
	if err != nil {
		logger.Fatal("failed to record run",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Render the frontier chart when requested.
	chartOutput := conf.Chart.OutputFile
	if *chartFile != "" {
		chartOutput = *chartFile
	}
	if chartOutput != "" {
		img, err := chart.RenderFrontier(result, tickers)
		if err != nil {
			logger.Fatal("failed to render chart",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if err := os.WriteFile(chartOutput, img, 0644); err != nil {
			logger.Fatal("failed to write chart file",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		logger.Info("wrote frontier chart",
			zap.String("op", "main"),
			zap.String("file", chartOutput),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	}

}
