package portfolio

import (
	"fmt"
	"runtime"

	"github.com/quantfolio/quantfolio/pkg/constants"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SimulationOptions controls one simulation run.
type SimulationOptions struct {
	RiskFreeRate        float64
	SimulationsPerAsset int
	Seed                int64
	CMLPoints           int
}

// Result bundles everything one simulation run produces.
type Result struct {
	Assets      []AssetStatistics
	Population  Population
	Optimal     Portfolio
	MinVariance Portfolio
	Frontier    Population
	CML         CapitalMarketLine
}

// RunSimulation executes the full pipeline over already-estimated statistics:
// sample random weight vectors, evaluate each into a portfolio, select the
// optimal and minimum-variance portfolios, extract the efficient frontier,
// and derive the capital market line.
//
// All weight vectors are drawn sequentially from the single seeded sampler so
// the population is fully determined by the seed. Evaluation then runs
// concurrently: each trial reads the shared immutable statistics and writes
// to its own population slot, so the final population order is generation
// order regardless of completion order.
func RunSimulation(logger *zap.Logger, stats *Statistics, opts SimulationOptions) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	n := stats.NumAssets()
	perAsset := opts.SimulationsPerAsset
	if perAsset <= 0 {
		perAsset = constants.DefaultSimulationsPerAsset
	}
	m := perAsset * n

	logger.Debug(fmt.Sprintf("simulating %d portfolios over %d assets", m, n),
		zap.String("op", "portfolio.RunSimulation"),
		zap.Int64("seed", opts.Seed),
	)

	sampler := NewSampler(opts.Seed)
	vectors := sampler.WeightVectors(n, m)

	population := make(Population, m)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range vectors {
		g.Go(func() error {
			pf, err := Evaluate(i, vectors[i], stats, opts.RiskFreeRate)
			if err != nil {
				return fmt.Errorf("evaluating portfolio %d: %w", i, err)
			}
			population[i] = pf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	optimal, err := population.FindOptimal()
	if err != nil {
		return nil, err
	}
	minVariance, err := population.FindMinVariance()
	if err != nil {
		return nil, err
	}
	frontier, err := population.EfficientFrontier()
	if err != nil {
		return nil, err
	}

	points := opts.CMLPoints
	if points <= 0 {
		points = constants.DefaultCMLPoints
	}
	cml, err := ComputeCapitalMarketLine(optimal, opts.RiskFreeRate, population.MaxRisk(), points)
	if err != nil {
		return nil, err
	}

	logger.Debug(fmt.Sprintf("frontier holds %d of %d portfolios", len(frontier), m),
		zap.String("op", "portfolio.RunSimulation"),
		zap.Float64("optimalSharpe", optimal.Sharpe),
		zap.Float64("minRisk", minVariance.Risk),
	)

	return &Result{
		Assets:      stats.Assets(),
		Population:  population,
		Optimal:     optimal,
		MinVariance: minVariance,
		Frontier:    frontier,
		CML:         cml,
	}, nil
}
