package marketdata

import (
	"math"

	"github.com/quantfolio/quantfolio/internal/portfolio"
)

// LogReturns computes periodic logarithmic returns from a price series. The
// leading observation consumed by differencing is dropped here, so the result
// has one fewer element than the input.
func LogReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	returns := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns[i-1] = math.Log(closes[i] / closes[i-1])
	}
	return returns
}

// ToReturnSeries converts fetched price series into the aligned return series
// the portfolio core consumes. Series are trimmed to the shortest common
// length using the most recent observations, so every asset shares one index.
func ToReturnSeries(series []*PriceSeries) []portfolio.ReturnSeries {
	allReturns := make([][]float64, len(series))
	minLen := -1
	for i, s := range series {
		allReturns[i] = LogReturns(s.Closes)
		if minLen < 0 || len(allReturns[i]) < minLen {
			minLen = len(allReturns[i])
		}
	}

	result := make([]portfolio.ReturnSeries, len(series))
	for i, s := range series {
		r := allReturns[i]
		result[i] = portfolio.ReturnSeries{
			Ticker:  s.Ticker,
			Returns: r[len(r)-minLen:],
		}
	}
	return result
}
