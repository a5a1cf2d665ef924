package marketdata

import (
	"context"
	"time"

	"github.com/quantfolio/quantfolio/pkg/constants"
	"golang.org/x/sync/errgroup"
)

// FetchAll downloads price series for every ticker concurrently, bounded by
// DefaultFetchConcurrency. Results are placed by ticker index so the output
// order matches the input order regardless of completion order. The first
// failure cancels the remaining fetches.
func (c *Client) FetchAll(ctx context.Context, tickers []string, start, end time.Time) ([]*PriceSeries, error) {
	series := make([]*PriceSeries, len(tickers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.DefaultFetchConcurrency)
	for i, ticker := range tickers {
		g.Go(func() error {
			s, err := c.FetchMonthlyCloses(ctx, ticker, start, end)
			if err != nil {
				return err
			}
			series[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return series, nil
}
