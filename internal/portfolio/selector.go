package portfolio

import "sort"

// Population is the ordered collection of evaluated portfolios produced by
// one simulation run. Order follows generation index.
type Population []Portfolio

// FindOptimal returns the portfolio with the maximum Sharpe ratio. Ties are
// broken by first occurrence in generation order.
func (p Population) FindOptimal() (Portfolio, error) {
	if len(p) == 0 {
		return Portfolio{}, ErrEmptyPopulation
	}
	best := p[0]
	for _, pf := range p[1:] {
		if pf.Sharpe > best.Sharpe {
			best = pf
		}
	}
	return best, nil
}

// FindMinVariance returns the portfolio with the minimum risk. Ties are
// broken by first occurrence in generation order.
func (p Population) FindMinVariance() (Portfolio, error) {
	if len(p) == 0 {
		return Portfolio{}, ErrEmptyPopulation
	}
	best := p[0]
	for _, pf := range p[1:] {
		if pf.Risk < best.Risk {
			best = pf
		}
	}
	return best, nil
}

// EfficientFrontier extracts the Pareto-efficient subset of the population:
// sort ascending by risk (ties by generation index), then keep each portfolio
// whose mean return is a new high-water mark. This approximates the frontier
// by dominance filtering over the simulated points; it is not the analytical
// frontier a quadratic optimizer would produce.
func (p Population) EfficientFrontier() (Population, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPopulation
	}

	sorted := make(Population, len(p))
	copy(sorted, p)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Risk != sorted[j].Risk {
			return sorted[i].Risk < sorted[j].Risk
		}
		return sorted[i].Index < sorted[j].Index
	})

	frontier := make(Population, 0, len(sorted))
	bestReturn := 0.0
	for i, pf := range sorted {
		if i == 0 || pf.MeanReturn >= bestReturn {
			bestReturn = pf.MeanReturn
			frontier = append(frontier, pf)
		}
	}
	return frontier, nil
}

// MaxRisk returns the largest risk in the population, or 0 when empty.
func (p Population) MaxRisk() float64 {
	max := 0.0
	for _, pf := range p {
		if pf.Risk > max {
			max = pf.Risk
		}
	}
	return max
}
