package strategy

import (
	"errors"
	"fmt"

	"github.com/appigoo/trend.v8/internal/calculator"
	"github.com/appigoo/trend.v8/internal/model"
)

// ErrInsufficientData signals that the series is shorter than the
// warm-up floor. It is a no-result, not a failure: callers render a
// neutral placeholder for the symbol.
var ErrInsufficientData = errors.New("insufficient data for analysis")

// minSeriesLen is the default warm-up floor; the effective floor grows
// with the configured windows.
const minSeriesLen = 30

// Config holds the engine parameters.
type Config struct {
	FastLen             int
	SlowLen             int
	RSIWindow           int
	VolMAWindow         int
	ResistanceProximity float64
}

// DefaultConfig mirrors the dashboard defaults: EMA 9/21, RSI(14),
// volume MA(10), resistance proximity 0.998.
func DefaultConfig() Config {
	return Config{
		FastLen:             9,
		SlowLen:             21,
		RSIWindow:           14,
		VolMAWindow:         10,
		ResistanceProximity: 0.998,
	}
}

// Validate checks the window parameters.
func (c Config) Validate() error {
	if c.FastLen <= 0 || c.SlowLen <= 0 {
		return fmt.Errorf("ema lengths must be positive, got fast=%d slow=%d", c.FastLen, c.SlowLen)
	}
	if c.FastLen >= c.SlowLen {
		return fmt.Errorf("fast ema length %d must be shorter than slow %d", c.FastLen, c.SlowLen)
	}
	if c.RSIWindow <= 0 {
		return fmt.Errorf("rsi window must be positive, got %d", c.RSIWindow)
	}
	if c.VolMAWindow <= 0 {
		return fmt.Errorf("volume ma window must be positive, got %d", c.VolMAWindow)
	}
	if c.ResistanceProximity <= 0 {
		return fmt.Errorf("resistance proximity must be positive, got %g", c.ResistanceProximity)
	}
	return nil
}

// MinBars returns the warm-up floor for this configuration: every
// indicator must be defined at the latest bar and the crossover check
// needs the previous bar defined as well.
func (c Config) MinBars() int {
	floor := minSeriesLen
	for _, w := range []int{c.SlowLen + 1, c.RSIWindow + 1, c.VolMAWindow + 1} {
		if w > floor {
			floor = w
		}
	}
	return floor
}

// Analyze augments the series with indicator columns and derives the
// point-in-time snapshot for its latest bar. It is pure: identical
// input always yields an identical snapshot. A series shorter than the
// warm-up floor returns ErrInsufficientData.
func Analyze(series *model.Series, cfg Config) (*model.AugmentedSeries, *model.Snapshot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if series == nil || series.Len() < cfg.MinBars() {
		return nil, nil, ErrInsufficientData
	}

	closes := calculator.Closes(series.Bars)
	vols := calculator.Volumes(series.Bars)

	fast := calculator.EMASeries(closes, cfg.FastLen)
	slow := calculator.EMASeries(closes, cfg.SlowLen)
	rsi := calculator.RSISeries(closes, cfg.RSIWindow)
	volMA := calculator.SMASeries(vols, cfg.VolMAWindow)

	rows := make([]model.IndicatorRow, series.Len())
	for i := range rows {
		rows[i] = model.IndicatorRow{
			FastEMA:  fast[i],
			SlowEMA:  slow[i],
			RSI:      rsi[i],
			VolumeMA: volMA[i],
		}
	}
	aug := &model.AugmentedSeries{Series: series, Rows: rows}

	snap := buildSnapshot(aug, cfg)
	return aug, snap, nil
}

func buildSnapshot(aug *model.AugmentedSeries, cfg Config) *model.Snapshot {
	last := aug.Series.Last()
	prevRow, lastRow := aug.LastRows()

	levels := calculator.Pivot(last)

	// Ratio is defined as 1.0 on a zero moving average; the percent
	// change guard on a zero open is kept uniform with it.
	volRatio := 1.0
	if lastRow.VolumeMA.Valid && lastRow.VolumeMA.Float != 0 {
		volRatio = last.Volume / lastRow.VolumeMA.Float
	}
	changePct := 0.0
	if last.Open != 0 {
		changePct = (last.Close - last.Open) / last.Open * 100
	}

	trend := model.TrendBearish
	if lastRow.FastEMA.Float > lastRow.SlowEMA.Float {
		trend = model.TrendBullish
	}

	alert := classify(ruleInput{
		Prev:       prevRow,
		Last:       lastRow,
		Close:      last.Close,
		Resistance: levels.Resistance,
		Proximity:  cfg.ResistanceProximity,
	})

	return &model.Snapshot{
		Symbol:      aug.Series.Symbol,
		Price:       last.Close,
		ChangePct:   changePct,
		RSI:         lastRow.RSI.Float,
		VolumeRatio: volRatio,
		Trend:       trend,
		Resistance:  levels.Resistance,
		Support:     levels.Support,
		Alert:       alert,
	}
}
