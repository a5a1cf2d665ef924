// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/quantfolio/quantfolio/internal/portfolio"
)

// TwoAssetStatistics returns a known two-asset universe: annualized means
// [0.10, 0.20], standard deviations [0.15, 0.30], zero correlation.
func TwoAssetStatistics() *portfolio.Statistics {
	return &portfolio.Statistics{
		Tickers:     []string{"AAA", "BBB"},
		MeanReturns: []float64{0.10, 0.20},
		StdDevs:     []float64{0.15, 0.30},
		Covariance: [][]float64{
			{0.0225, 0.0},
			{0.0, 0.09},
		},
	}
}

// SingleAssetStatistics returns a one-asset universe with annualized mean
// 0.10 and standard deviation 0.15.
func SingleAssetStatistics() *portfolio.Statistics {
	return &portfolio.Statistics{
		Tickers:     []string{"AAA"},
		MeanReturns: []float64{0.10},
		StdDevs:     []float64{0.15},
		Covariance:  [][]float64{{0.0225}},
	}
}
