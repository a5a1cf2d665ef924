// Package output provides utilities for formatting and displaying simulation results.
package output

import (
	"fmt"
	"strings"

	"github.com/quantfolio/quantfolio/internal/portfolio"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(result *portfolio.Result) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Asset statistics ---\n")
	fmt.Printf("Ticker | Annual return | Annual std dev\n")
	fmt.Printf("______ | _____________ | ______________\n")
	for _, asset := range result.Assets {
		_, _ = p.Printf("%-6s | %12.2f%% | %13.2f%%\n",
			asset.Ticker, asset.AnnualReturn*100, asset.AnnualStdDev*100)
	}

	fmt.Printf("\n--- Optimal portfolio (max Sharpe) ---\n")
	printPortfolio(p, result.Assets, result.Optimal)

	fmt.Printf("\n--- Minimum variance portfolio ---\n")
	printPortfolio(p, result.Assets, result.MinVariance)

	fmt.Printf("\n--- Efficient frontier ---\n")
	fmt.Printf("%d of %d simulated portfolios are efficient\n", len(result.Frontier), len(result.Population))

	fmt.Printf("\n--- Capital market line ---\n")
	_, _ = p.Printf("intercept (risk-free rate): %.2f%%\n", result.CML.Intercept*100)
	_, _ = p.Printf("slope (Sharpe of optimal): %.4f\n", result.CML.Slope)
}

func printPortfolio(p *message.Printer, assets []portfolio.AssetStatistics, pf portfolio.Portfolio) {
	for i, asset := range assets {
		_, _ = p.Printf("%-6s %6.2f%%\n", asset.Ticker, pf.Weights[i]*100)
	}
	_, _ = p.Printf("return %.2f%% | risk %.2f%% | Sharpe %.4f\n",
		pf.MeanReturn*100, pf.Risk*100, pf.Sharpe)
}

// CsvFormat outputs the full population in comma-separated value format, with
// distinguished rows flagged in the kind column.
func CsvFormat(result *portfolio.Result) {
	frontier := make(map[int]bool, len(result.Frontier))
	for _, pf := range result.Frontier {
		frontier[pf.Index] = true
	}

	fmt.Printf(`"kind","index","risk","return","sharpe","weights"`)
	fmt.Printf("\n")
	for _, pf := range result.Population {
		kind := "population"
		switch {
		case pf.Index == result.Optimal.Index:
			kind = "optimal"
		case pf.Index == result.MinVariance.Index:
			kind = "min_variance"
		case frontier[pf.Index]:
			kind = "frontier"
		}
		weights := make([]string, len(pf.Weights))
		for i, w := range pf.Weights {
			weights[i] = fmt.Sprintf("%.6f", w)
		}
		fmt.Printf(`"%s","%d","%.6f","%.6f","%.6f","%s"`,
			kind, pf.Index, pf.Risk, pf.MeanReturn, pf.Sharpe, strings.Join(weights, ";"))
		fmt.Printf("\n")
	}
}
