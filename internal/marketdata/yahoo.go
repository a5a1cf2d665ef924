// Package marketdata retrieves historical price observations from Yahoo
// Finance and derives the periodic log-return series consumed by the
// portfolio core.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// DataRetrievalError indicates an upstream data failure (network fault,
// unknown ticker, malformed response). It is surfaced before the portfolio
// core ever runs.
type DataRetrievalError struct {
	Ticker string
	Err    error
}

func (e *DataRetrievalError) Error() string {
	return fmt.Sprintf("retrieving data for %s: %v", e.Ticker, e.Err)
}

func (e *DataRetrievalError) Unwrap() error {
	return e.Err
}

// PriceSeries holds the chronologically ordered adjusted close observations
// for one ticker.
type PriceSeries struct {
	Ticker string
	Dates  []time.Time
	Closes []float64
}

// Client fetches historical prices from the Yahoo Finance chart API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Yahoo Finance client with a default timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBaseURL creates a client pointed at an alternate endpoint.
// Used by tests to target a local server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol string `json:"symbol"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Adjclose []struct {
					Adjclose []interface{} `json:"adjclose"`
				} `json:"adjclose"`
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// FetchMonthlyCloses downloads monthly adjusted close prices for one ticker
// over [start, end]. Nil, NaN, and non-positive observations are dropped.
func (c *Client) FetchMonthlyCloses(ctx context.Context, ticker string, start, end time.Time) (*PriceSeries, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1mo&period1=%d&period2=%d&events=div%%7Csplit",
		c.baseURL, url.PathEscape(ticker), start.Unix(), end.Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &DataRetrievalError{Ticker: ticker, Err: err}
	}
	// Yahoo rejects requests without a browser-like user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &DataRetrievalError{Ticker: ticker, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DataRetrievalError{Ticker: ticker, Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &DataRetrievalError{Ticker: ticker, Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(body))}
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, &DataRetrievalError{Ticker: ticker, Err: fmt.Errorf("decode: %w", err)}
	}
	if chart.Chart.Error != nil {
		return nil, &DataRetrievalError{Ticker: ticker, Err: fmt.Errorf("api error: %s", chart.Chart.Error.Description)}
	}
	if len(chart.Chart.Result) == 0 {
		return nil, &DataRetrievalError{Ticker: ticker, Err: fmt.Errorf("no data returned")}
	}

	result := chart.Chart.Result[0]

	// Prefer adjusted closes; fall back to raw closes when absent.
	var raw []interface{}
	if len(result.Indicators.Adjclose) > 0 {
		raw = result.Indicators.Adjclose[0].Adjclose
	} else if len(result.Indicators.Quote) > 0 {
		raw = result.Indicators.Quote[0].Close
	}
	if len(raw) == 0 {
		return nil, &DataRetrievalError{Ticker: ticker, Err: fmt.Errorf("no close data")}
	}

	series := &PriceSeries{Ticker: ticker}
	for i, v := range raw {
		if v == nil {
			continue
		}
		val, ok := toFloat(v)
		if !ok || math.IsNaN(val) || val <= 0 {
			continue
		}
		series.Closes = append(series.Closes, val)
		if i < len(result.Timestamp) {
			series.Dates = append(series.Dates, time.Unix(result.Timestamp[i], 0).UTC())
		}
	}

	if len(series.Closes) < 2 {
		return nil, &DataRetrievalError{
			Ticker: ticker,
			Err:    fmt.Errorf("only %d usable observations, need at least 2", len(series.Closes)),
		}
	}

	return series, nil
}
