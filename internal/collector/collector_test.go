package collector

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/appigoo/trend.v8/internal/model"
)

func TestCollect_BuildsSeries(t *testing.T) {
	mock := &MockFetcher{BasePrice: 150, BarCount: 45}
	col := NewCollector(mock, "5m")

	series, err := col.Collect("AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Symbol != "AAPL" || series.Interval != "5m" {
		t.Errorf("unexpected series identity: %s %s", series.Symbol, series.Interval)
	}
	if series.Len() != 45 {
		t.Errorf("expected 45 bars, got %d", series.Len())
	}
	for i := 1; i < series.Len(); i++ {
		if !series.Bars[i-1].Time.Before(series.Bars[i].Time) {
			t.Fatalf("timestamps not strictly increasing at index %d", i)
		}
	}
}

func TestCollect_EmptyResponseIsNoData(t *testing.T) {
	mock := &MockFetcher{BarsBySymbol: map[string][]model.Bar{"GONE": {}}}
	col := NewCollector(mock, "1m")

	_, err := col.Collect("GONE")
	if !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestRESTFetcher_FetchAndNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("symbol") {
		case "AAPL":
			json.NewEncoder(w).Encode([]restBar{
				{Timestamp: 1717408860, Open: 101, High: 102, Low: 100, Close: 101.5, Volume: 3000},
				{Timestamp: 1717408800, Open: 100, High: 101, Low: 99, Close: 100.5, Volume: 2000},
			})
		default:
			json.NewEncoder(w).Encode([]restBar{})
		}
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "key", "")

	bars, err := f.FetchIntradayBars("AAPL", "1m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 || !bars[0].Time.Before(bars[1].Time) {
		t.Errorf("expected 2 ascending bars, got %+v", bars)
	}

	if _, err := f.FetchIntradayBars("GONE", "1m"); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for empty response, got %v", err)
	}
}

func TestValidateInterval(t *testing.T) {
	for _, ok := range []string{"1m", "2m", "5m", "15m"} {
		if err := ValidateInterval(ok); err != nil {
			t.Errorf("%s: unexpected error %v", ok, err)
		}
	}
	for _, bad := range []string{"", "30s", "1h", "3m"} {
		if err := ValidateInterval(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}
