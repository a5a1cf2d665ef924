package marketdata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func chartResponse(closes string) string {
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{"symbol":"TEST"},
		"timestamp":[1577836800,1580515200,1583020800,1585699200],
		"indicators":{"adjclose":[{"adjclose":[%s]}],"quote":[{"close":[%s]}]}}],
		"error":null}}`, closes, closes)
}

func TestFetchMonthlyCloses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/v8/finance/chart/TEST") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("interval") != "1mo" {
			t.Errorf("interval = %s, expected 1mo", r.URL.Query().Get("interval"))
		}
		fmt.Fprint(w, chartResponse("100.0,null,110.0,121.0"))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC)

	series, err := client.FetchMonthlyCloses(context.Background(), "TEST", start, end)
	if err != nil {
		t.Fatalf("FetchMonthlyCloses() error = %v", err)
	}

	// The null observation is dropped.
	if len(series.Closes) != 3 {
		t.Fatalf("got %d closes, expected 3", len(series.Closes))
	}
	if series.Closes[0] != 100.0 || series.Closes[1] != 110.0 || series.Closes[2] != 121.0 {
		t.Errorf("closes = %v", series.Closes)
	}
	if len(series.Dates) != 3 {
		t.Errorf("got %d dates, expected 3", len(series.Dates))
	}
	if series.Ticker != "TEST" {
		t.Errorf("ticker = %s, expected TEST", series.Ticker)
	}
}

func TestFetchMonthlyClosesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.FetchMonthlyCloses(context.Background(), "BOGUS", time.Now().AddDate(-1, 0, 0), time.Now())

	var retrievalErr *DataRetrievalError
	if !errors.As(err, &retrievalErr) {
		t.Fatalf("error = %v, expected DataRetrievalError", err)
	}
	if retrievalErr.Ticker != "BOGUS" {
		t.Errorf("Ticker = %s, expected BOGUS", retrievalErr.Ticker)
	}
}

func TestFetchMonthlyClosesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.FetchMonthlyCloses(context.Background(), "TEST", time.Now().AddDate(-1, 0, 0), time.Now())

	var retrievalErr *DataRetrievalError
	if !errors.As(err, &retrievalErr) {
		t.Fatalf("error = %v, expected DataRetrievalError", err)
	}
}

func TestFetchMonthlyClosesTooFewObservations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartResponse("100.0,null,null,null"))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.FetchMonthlyCloses(context.Background(), "TEST", time.Now().AddDate(-1, 0, 0), time.Now())

	var retrievalErr *DataRetrievalError
	if !errors.As(err, &retrievalErr) {
		t.Fatalf("error = %v, expected DataRetrievalError for sparse data", err)
	}
}

func TestFetchAllPreservesOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartResponse("100.0,110.0,121.0,133.1"))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	tickers := []string{"AAA", "BBB", "CCC"}
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC)

	series, err := client.FetchAll(context.Background(), tickers, start, end)
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("FetchAll() returned %d series, expected 3", len(series))
	}
	for i, ticker := range tickers {
		if series[i].Ticker != ticker {
			t.Errorf("series[%d].Ticker = %s, expected %s", i, series[i].Ticker, ticker)
		}
	}
}

func TestFetchAllPropagatesFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "BAD") {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		fmt.Fprint(w, chartResponse("100.0,110.0,121.0,133.1"))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.FetchAll(context.Background(), []string{"AAA", "BAD"}, time.Now().AddDate(-1, 0, 0), time.Now())

	var retrievalErr *DataRetrievalError
	if !errors.As(err, &retrievalErr) {
		t.Fatalf("FetchAll() error = %v, expected DataRetrievalError", err)
	}
	if retrievalErr.Ticker != "BAD" {
		t.Errorf("Ticker = %s, expected BAD", retrievalErr.Ticker)
	}
}
