package model

// Severity classifies how urgent an alert is.
type Severity string

const (
	SeverityNormal   Severity = "NORMAL"
	SeverityCaution  Severity = "CAUTION"
	SeverityCritical Severity = "CRITICAL"
)

// Trend labels the EMA alignment at the latest bar.
type Trend string

const (
	TrendBullish Trend = "Bullish"
	TrendBearish Trend = "Bearish"
)

// Alert is the discrete signal produced for the latest bar.
type Alert struct {
	Message  string
	Severity Severity
}

// Snapshot is the point-in-time summary for the latest bar of a series.
type Snapshot struct {
	Symbol      string
	Price       float64
	ChangePct   float64
	RSI         float64
	VolumeRatio float64
	Trend       Trend
	Resistance  float64
	Support     float64
	Alert       Alert
}

// VolatilityStatus annotates the market-wide banner. Advisory only,
// it never feeds per-symbol classification.
type VolatilityStatus struct {
	Level  float64
	Delta  float64
	Rising bool
}
