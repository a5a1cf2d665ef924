// Package portfolio implements Monte Carlo mean-variance portfolio
// optimization: statistics estimation over periodic return series, random
// portfolio sampling, risk/return/Sharpe evaluation, optimal and
// minimum-variance selection, efficient frontier extraction, and the capital
// market line.
package portfolio

import (
	"math"

	"github.com/quantfolio/quantfolio/pkg/mathutil"
)

// ReturnSeries holds the ordered periodic returns for one asset. All series
// passed to EstimateStatistics must share the same length and period
// boundaries.
type ReturnSeries struct {
	Ticker  string
	Returns []float64
}

// AssetStatistics holds the annualized statistics for one asset.
type AssetStatistics struct {
	Ticker       string
	AnnualReturn float64
	AnnualStdDev float64
}

// Statistics holds the annualized mean-return vector and covariance matrix
// for the asset universe. Vector and matrix positions follow Tickers order.
type Statistics struct {
	Tickers     []string
	MeanReturns []float64
	StdDevs     []float64
	Covariance  [][]float64
}

// NumAssets returns the size of the asset universe.
func (s *Statistics) NumAssets() int {
	return len(s.Tickers)
}

// Assets returns the per-asset annualized statistics as one record per asset.
func (s *Statistics) Assets() []AssetStatistics {
	assets := make([]AssetStatistics, len(s.Tickers))
	for i, ticker := range s.Tickers {
		assets[i] = AssetStatistics{
			Ticker:       ticker,
			AnnualReturn: s.MeanReturns[i],
			AnnualStdDev: s.StdDevs[i],
		}
	}
	return assets
}

// EstimateStatistics converts periodic per-asset return series into the
// annualized mean-return vector and annualized covariance matrix. Means scale
// by periodsPerYear, standard deviations by sqrt(periodsPerYear), and the
// covariance matrix by periodsPerYear. Variance and covariance use the sample
// (N-1) denominator.
func EstimateStatistics(series []ReturnSeries, periodsPerYear int) (*Statistics, error) {
	if len(series) == 0 {
		return nil, &InsufficientDataError{Reason: "no return series provided"}
	}

	length := len(series[0].Returns)
	for _, s := range series {
		if len(s.Returns) == 0 {
			return nil, &InsufficientDataError{Ticker: s.Ticker, Reason: "empty return series"}
		}
		if len(s.Returns) != length {
			return nil, &InsufficientDataError{
				Ticker: s.Ticker,
				Reason: "return series length does not match the other assets",
			}
		}
	}

	p := float64(periodsPerYear)
	n := len(series)

	stats := &Statistics{
		Tickers:     make([]string, n),
		MeanReturns: make([]float64, n),
		StdDevs:     make([]float64, n),
		Covariance:  make([][]float64, n),
	}

	periodicMeans := make([]float64, n)
	for i, s := range series {
		stats.Tickers[i] = s.Ticker
		periodicMeans[i] = mathutil.Mean(s.Returns)
		stats.MeanReturns[i] = periodicMeans[i] * p
		variance := mathutil.SampleVariance(s.Returns, periodicMeans[i])
		stats.StdDevs[i] = math.Sqrt(variance) * math.Sqrt(p)
	}

	for i := range stats.Covariance {
		stats.Covariance[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cov := 0.0
			for k := 0; k < length; k++ {
				cov += (series[i].Returns[k] - periodicMeans[i]) * (series[j].Returns[k] - periodicMeans[j])
			}
			if length > 1 {
				cov = cov / float64(length-1) * p
			} else {
				cov = 0
			}
			stats.Covariance[i][j] = cov
			stats.Covariance[j][i] = cov
		}
	}

	return stats, nil
}
