package model

// Value is an optional indicator cell. Indicators are undefined until
// their window has enough history; an undefined cell must never be
// mistaken for zero in trend or crossover comparisons.
type Value struct {
	Float float64
	Valid bool
}

// Some wraps a defined value.
func Some(f float64) Value { return Value{Float: f, Valid: true} }

// None is the undefined value.
var None = Value{}

// IndicatorRow holds the derived columns for one bar.
type IndicatorRow struct {
	FastEMA  Value
	SlowEMA  Value
	RSI      Value
	VolumeMA Value
}

// AugmentedSeries pairs a series with its per-bar indicator rows.
// Rows is always the same length as Series.Bars.
type AugmentedSeries struct {
	Series *Series
	Rows   []IndicatorRow
}

// LastRows returns the latest and previous indicator rows.
// Callers must ensure at least two rows exist.
func (a *AugmentedSeries) LastRows() (prev, last IndicatorRow) {
	n := len(a.Rows)
	return a.Rows[n-2], a.Rows[n-1]
}
