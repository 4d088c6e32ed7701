package model

import "time"

// Bar represents a single intraday candlestick.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series holds raw bars for one symbol at one sampling interval,
// time-ascending.
type Series struct {
	Symbol    string
	Interval  string
	Bars      []Bar
	FetchedAt time.Time
}

// Len returns the number of bars in the series.
func (s *Series) Len() int { return len(s.Bars) }

// Last returns the most recent bar. Callers must check Len first.
func (s *Series) Last() Bar { return s.Bars[len(s.Bars)-1] }

// Tail returns the last n bars (or all of them if fewer exist).
func (s *Series) Tail(n int) []Bar {
	if len(s.Bars) <= n {
		return s.Bars
	}
	return s.Bars[len(s.Bars)-n:]
}
