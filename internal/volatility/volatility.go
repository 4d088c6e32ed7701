package volatility

import (
	"log"

	"github.com/appigoo/trend.v8/internal/collector"
	"github.com/appigoo/trend.v8/internal/model"
)

// Neutral fallback when the index cannot be read: a calm-market level
// and a zero delta.
const (
	FallbackLevel = 20.0
	FallbackDelta = 0.0
)

// DefaultThreshold is the delta above which the banner flips to
// "volatility rising".
const DefaultThreshold = 0.2

// Reader annotates the dashboard banner from a volatility-index
// series. Advisory only: its output never feeds per-symbol alerts.
type Reader struct {
	Fetcher   collector.Fetcher
	Symbol    string
	Interval  string
	Threshold float64
}

// NewReader creates a Reader; empty fields fall back to ^VIX at 2m
// with the default threshold.
func NewReader(fetcher collector.Fetcher, symbol, interval string, threshold float64) *Reader {
	if symbol == "" {
		symbol = "^VIX"
	}
	if interval == "" {
		interval = "2m"
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Reader{Fetcher: fetcher, Symbol: symbol, Interval: interval, Threshold: threshold}
}

// Read fetches the index and compares its latest two closes. Any fetch
// failure or a series shorter than two bars degrades to the neutral
// fallback rather than failing the cycle.
func (r *Reader) Read() model.VolatilityStatus {
	bars, err := r.Fetcher.FetchIntradayBars(r.Symbol, r.Interval)
	if err != nil {
		log.Printf("[WARN] volatility index fetch failed: %v, using fallback", err)
		return model.VolatilityStatus{Level: FallbackLevel, Delta: FallbackDelta}
	}
	if len(bars) < 2 {
		return model.VolatilityStatus{Level: FallbackLevel, Delta: FallbackDelta}
	}
	level := bars[len(bars)-1].Close
	delta := level - bars[len(bars)-2].Close
	return model.VolatilityStatus{
		Level:  level,
		Delta:  delta,
		Rising: delta > r.Threshold,
	}
}
