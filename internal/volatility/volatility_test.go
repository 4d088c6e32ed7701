package volatility

import (
	"errors"
	"testing"
	"time"

	"github.com/appigoo/trend.v8/internal/collector"
	"github.com/appigoo/trend.v8/internal/model"
)

func vixBars(closes ...float64) []model.Bar {
	start := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Time:  start.Add(time.Duration(i) * 2 * time.Minute),
			Open:  c, High: c, Low: c, Close: c,
		}
	}
	return bars
}

func TestRead_FallbackOnShortSeries(t *testing.T) {
	tests := []struct {
		name string
		bars []model.Bar
	}{
		{"empty", vixBars()},
		{"single bar", vixBars(18.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &collector.MockFetcher{BarsBySymbol: map[string][]model.Bar{"^VIX": tt.bars}}
			status := NewReader(mock, "", "", 0).Read()
			if status.Level != 20.0 || status.Delta != 0.0 {
				t.Errorf("expected neutral fallback (20.0, 0.0), got (%.2f, %.2f)", status.Level, status.Delta)
			}
			if status.Rising {
				t.Error("fallback must not report rising volatility")
			}
		})
	}
}

func TestRead_FallbackOnFetchError(t *testing.T) {
	mock := &collector.MockFetcher{Err: errors.New("provider down")}
	status := NewReader(mock, "", "", 0).Read()
	if status.Level != 20.0 || status.Delta != 0.0 {
		t.Errorf("expected neutral fallback, got (%.2f, %.2f)", status.Level, status.Delta)
	}
}

func TestRead_RisingAndStable(t *testing.T) {
	tests := []struct {
		name       string
		bars       []model.Bar
		wantLevel  float64
		wantDelta  float64
		wantRising bool
	}{
		{"rising", vixBars(19.0, 19.5), 19.5, 0.5, true},
		{"stable", vixBars(19.0, 19.1), 19.1, 0.1, false},
		{"falling", vixBars(21.0, 20.0), 20.0, -1.0, false},
		{"at threshold", vixBars(19.0, 19.2), 19.2, 0.2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &collector.MockFetcher{BarsBySymbol: map[string][]model.Bar{"^VIX": tt.bars}}
			status := NewReader(mock, "^VIX", "2m", 0.2).Read()
			if status.Level != tt.wantLevel {
				t.Errorf("level: expected %.2f, got %.2f", tt.wantLevel, status.Level)
			}
			if delta := status.Delta; delta < tt.wantDelta-1e-9 || delta > tt.wantDelta+1e-9 {
				t.Errorf("delta: expected %.2f, got %.2f", tt.wantDelta, delta)
			}
			if status.Rising != tt.wantRising {
				t.Errorf("rising: expected %v, got %v", tt.wantRising, status.Rising)
			}
		})
	}
}
