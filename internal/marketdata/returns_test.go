package marketdata

import (
	"math"
	"testing"

	"github.com/quantfolio/quantfolio/pkg/mathutil"
)

func TestLogReturns(t *testing.T) {
	closes := []float64{100.0, 110.0, 99.0}
	returns := LogReturns(closes)

	if len(returns) != 2 {
		t.Fatalf("LogReturns() returned %d values, expected 2", len(returns))
	}
	if !mathutil.WithinTolerance(returns[0], math.Log(1.1), 1e-12) {
		t.Errorf("returns[0] = %v, expected log(1.1)", returns[0])
	}
	if !mathutil.WithinTolerance(returns[1], math.Log(0.9), 1e-12) {
		t.Errorf("returns[1] = %v, expected log(0.9)", returns[1])
	}
}

func TestLogReturnsTooShort(t *testing.T) {
	if got := LogReturns([]float64{100.0}); got != nil {
		t.Errorf("LogReturns() = %v, expected nil for a single observation", got)
	}
	if got := LogReturns(nil); got != nil {
		t.Errorf("LogReturns() = %v, expected nil for empty input", got)
	}
}

func TestToReturnSeries(t *testing.T) {
	series := []*PriceSeries{
		{Ticker: "AAA", Closes: []float64{100, 110, 121, 133.1}},
		{Ticker: "BBB", Closes: []float64{50, 55, 60.5}},
	}

	result := ToReturnSeries(series)
	if len(result) != 2 {
		t.Fatalf("ToReturnSeries() returned %d series, expected 2", len(result))
	}

	// Both series trim to the shortest length (2 returns), keeping the most
	// recent observations.
	for _, rs := range result {
		if len(rs.Returns) != 2 {
			t.Errorf("series %s has %d returns, expected 2", rs.Ticker, len(rs.Returns))
		}
	}

	// AAA's trimmed tail starts at the 110 -> 121 transition.
	if !mathutil.WithinTolerance(result[0].Returns[0], math.Log(121.0/110.0), 1e-12) {
		t.Errorf("AAA first trimmed return = %v, expected log(121/110)", result[0].Returns[0])
	}
	if result[0].Ticker != "AAA" || result[1].Ticker != "BBB" {
		t.Errorf("tickers out of order: %s, %s", result[0].Ticker, result[1].Ticker)
	}
}
