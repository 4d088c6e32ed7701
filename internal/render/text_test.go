package render

import (
	"strings"
	"testing"
	"time"

	"github.com/appigoo/trend.v8/internal/model"
)

func TestFormatBanner(t *testing.T) {
	at := time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)

	stable := FormatBanner(model.VolatilityStatus{Level: 19.1, Delta: 0.1}, at)
	if !strings.Contains(stable, "market stable") {
		t.Errorf("expected stable hint, got %q", stable)
	}

	rising := FormatBanner(model.VolatilityStatus{Level: 22.4, Delta: 0.9, Rising: true}, at)
	if !strings.Contains(rising, "reduce exposure") {
		t.Errorf("expected rising hint, got %q", rising)
	}
	if !strings.Contains(rising, "22.40") || !strings.Contains(rising, "+0.90") {
		t.Errorf("expected level and signed delta, got %q", rising)
	}
}

func TestFormatDashboard(t *testing.T) {
	snap := &model.Snapshot{
		Symbol:      "AAPL",
		Price:       189.12,
		ChangePct:   0.42,
		RSI:         61.3,
		VolumeRatio: 1.8,
		Trend:       model.TrendBullish,
		Resistance:  191.0,
		Support:     187.5,
		Alert:       model.Alert{Message: "near resistance", Severity: model.SeverityCaution},
	}
	results := []SymbolResult{
		{Symbol: "AAPL", Snapshot: snap},
		{Symbol: "NOPE", Status: "no data"},
		{Symbol: "FRESH", Status: "insufficient data"},
	}
	out := FormatDashboard(model.VolatilityStatus{Level: 20}, results, time.Now())

	for _, want := range []string{"AAPL", "near resistance", "189.12", "Bullish",
		"NOPE", "no data", "FRESH", "insufficient data"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q:\n%s", want, out)
		}
	}
}
