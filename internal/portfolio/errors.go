package portfolio

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero indicates a Sharpe ratio or tangent-line slope could not
// be computed because the portfolio risk is exactly zero.
var ErrDivisionByZero = errors.New("division by zero: portfolio risk is zero")

// ErrEmptyPopulation indicates a selection or frontier operation was invoked
// on a population with no elements.
var ErrEmptyPopulation = errors.New("empty portfolio population")

// InsufficientDataError indicates empty or misaligned return series.
type InsufficientDataError struct {
	Ticker string
	Reason string
}

func (e *InsufficientDataError) Error() string {
	if e.Ticker == "" {
		return fmt.Sprintf("insufficient data: %s", e.Reason)
	}
	return fmt.Sprintf("insufficient data for %s: %s", e.Ticker, e.Reason)
}

// NumericalError indicates a numerically invalid intermediate result, such as
// a negative variance radicand from a non-positive-semidefinite covariance
// matrix.
type NumericalError struct {
	Op    string
	Value float64
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("numerical error in %s: got %g", e.Op, e.Value)
}
