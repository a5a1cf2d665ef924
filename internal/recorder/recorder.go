// Package recorder persists simulation run history for later analysis.
package recorder

import (
	"time"

	"github.com/quantfolio/quantfolio/internal/portfolio"
)

// RunRecord holds everything persisted for one simulation run.
type RunRecord struct {
	Timestamp           time.Time
	Tickers             []string
	StartDate           string
	EndDate             string
	RiskFreeRate        float64
	SimulationsPerAsset int
	Seed                int64
	Optimal             portfolio.Portfolio
	MinVariance         portfolio.Portfolio
	Assets              []portfolio.AssetStatistics
}

// Recorder persists run history.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
