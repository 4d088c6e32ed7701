package collector

import (
	"fmt"
	"math"
	"time"

	"github.com/appigoo/trend.v8/internal/model"
)

// MockFetcher returns controllable fixed data for development and
// testing.
type MockFetcher struct {
	BarsBySymbol map[string][]model.Bar
	Err          error
	BasePrice    float64
	BarCount     int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchIntradayBars(symbol, interval string) ([]model.Bar, error) {
	if err := ValidateInterval(interval); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if bars, ok := m.BarsBySymbol[symbol]; ok {
		return bars, nil
	}
	price := m.BasePrice
	if price == 0 {
		price = 100
	}
	count := m.BarCount
	if count == 0 {
		count = 60
	}
	return GenerateBars(price, count), nil
}

// GenerateBars produces a deterministic gently-oscillating series,
// long enough for indicator warm-up by default.
func GenerateBars(basePrice float64, count int) []model.Bar {
	start := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + 0.002*math.Sin(float64(i)/5))
		bars[i] = model.Bar{
			Time:   start.Add(time.Duration(i) * time.Minute),
			Open:   p * 0.999,
			High:   p * 1.004,
			Low:    p * 0.996,
			Close:  p,
			Volume: 100000 + 1000*float64(i%10),
		}
	}
	return bars
}

// Collector wraps a Fetcher and assembles validated Series values.
type Collector struct {
	Fetcher  Fetcher
	Interval string
}

// NewCollector creates a Collector for one sampling interval.
func NewCollector(fetcher Fetcher, interval string) *Collector {
	return &Collector{Fetcher: fetcher, Interval: interval}
}

// Collect fetches the trailing window for a symbol and returns it as a
// Series. An empty provider response maps to ErrNoData.
func (c *Collector) Collect(symbol string) (*model.Series, error) {
	bars, err := c.Fetcher.FetchIntradayBars(symbol, c.Interval)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoData)
	}
	return &model.Series{
		Symbol:    symbol,
		Interval:  c.Interval,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}
