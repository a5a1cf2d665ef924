// Package chart renders the efficient frontier and capital market line to a
// PNG image.
package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quantfolio/quantfolio/internal/portfolio"
	"github.com/vicanso/go-charts/v2"
)

// RenderFrontier renders the efficient frontier and the capital market line
// as two series over a shared risk axis: both are evaluated at the frontier
// portfolios' risk values.
func RenderFrontier(result *portfolio.Result, tickers []string) ([]byte, error) {
	if result == nil || len(result.Frontier) == 0 {
		return nil, errors.New("no frontier points to render")
	}

	xLabels := make([]string, len(result.Frontier))
	frontierReturns := make([]float64, len(result.Frontier))
	cmlReturns := make([]float64, len(result.Frontier))
	yMin, yMax := result.Frontier[0].MeanReturn, result.Frontier[0].MeanReturn

	for i, pf := range result.Frontier {
		xLabels[i] = fmt.Sprintf("%.3f", pf.Risk)
		frontierReturns[i] = pf.MeanReturn
		cmlReturns[i] = result.CML.Intercept + result.CML.Slope*pf.Risk

		for _, v := range []float64{frontierReturns[i], cmlReturns[i]} {
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}

	pad := (yMax - yMin) * 0.05
	yMin -= pad
	yMax += pad

	names := []string{"Efficient frontier", "Capital market line"}
	painter, err := charts.LineRender([][]float64{frontierReturns, cmlReturns},
		charts.TitleTextOptionFunc("Efficient frontier",
			strings.Join(tickers, ", ")+fmt.Sprintf(" • optimal Sharpe %.2f", result.Optimal.Sharpe)),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: xLabels, BoundaryGap: charts.FalseFlag(), SplitNumber: 8}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
