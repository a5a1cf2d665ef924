package portfolio

import (
	"math"

	"github.com/quantfolio/quantfolio/pkg/constants"
	"github.com/quantfolio/quantfolio/pkg/mathutil"
)

// Portfolio is one evaluated random portfolio. Index is the generation index
// within the simulation, which ties the weight vector to its statistics
// explicitly rather than by positional alignment across containers, and
// serves as the tie-break order for selection and frontier sorting.
type Portfolio struct {
	Index      int
	Weights    []float64
	MeanReturn float64
	Risk       float64
	Sharpe     float64
}

// Evaluate computes the mean return, risk, and Sharpe ratio for one weight
// vector against the annualized statistics. It is a pure function of its
// inputs.
//
// Risk is sqrt(w' * Cov * w); a radicand below -RadicandTolerance signals a
// non-positive-semidefinite covariance matrix and yields a NumericalError,
// while rounding noise in (-tolerance, 0) clamps to zero. A risk of exactly
// zero yields ErrDivisionByZero since the Sharpe ratio is undefined there.
func Evaluate(index int, weights []float64, stats *Statistics, riskFreeRate float64) (Portfolio, error) {
	meanReturn := mathutil.Dot(weights, stats.MeanReturns)

	variance := 0.0
	n := len(weights)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			variance += weights[i] * weights[j] * stats.Covariance[i][j]
		}
	}

	if variance < -constants.RadicandTolerance {
		return Portfolio{}, &NumericalError{Op: "portfolio variance", Value: variance}
	}
	if variance < 0 {
		variance = 0
	}

	risk := math.Sqrt(variance)
	if risk == 0 {
		return Portfolio{}, ErrDivisionByZero
	}

	return Portfolio{
		Index:      index,
		Weights:    weights,
		MeanReturn: meanReturn,
		Risk:       risk,
		Sharpe:     (meanReturn - riskFreeRate) / risk,
	}, nil
}
