package portfolio

// CMLPoint is one sample of the capital market line.
type CMLPoint struct {
	Risk   float64
	Return float64
}

// CapitalMarketLine is the tangent line from the risk-free rate through the
// maximum-Sharpe portfolio, sampled at evenly spaced risk values.
type CapitalMarketLine struct {
	Intercept float64
	Slope     float64
	Points    []CMLPoint
}

// ComputeCapitalMarketLine derives the tangent line from the risk-free rate
// through the optimal portfolio and samples it at points evenly spaced risk
// values from 0 to maxRisk inclusive. A non-positive points count falls back
// to two samples (the endpoints).
func ComputeCapitalMarketLine(optimal Portfolio, riskFreeRate, maxRisk float64, points int) (CapitalMarketLine, error) {
	if optimal.Risk == 0 {
		return CapitalMarketLine{}, ErrDivisionByZero
	}
	if points < 2 {
		points = 2
	}

	slope := (optimal.MeanReturn - riskFreeRate) / optimal.Risk
	line := CapitalMarketLine{
		Intercept: riskFreeRate,
		Slope:     slope,
		Points:    make([]CMLPoint, points),
	}
	step := maxRisk / float64(points-1)
	for i := range line.Points {
		risk := step * float64(i)
		line.Points[i] = CMLPoint{
			Risk:   risk,
			Return: riskFreeRate + slope*risk,
		}
	}
	return line, nil
}
