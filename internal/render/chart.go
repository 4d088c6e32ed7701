package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/appigoo/trend.v8/internal/model"
)

// chartBars is how many trailing bars a chart shows.
const chartBars = 30

// WriteChartPNG renders the trailing window of an analyzed series as a
// PNG: closing price, both EMA overlays, and dashed support/resistance
// levels.
func WriteChartPNG(path string, aug *model.AugmentedSeries, snap *model.Snapshot) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	n := len(aug.Series.Bars)
	start := n - chartBars
	if start < 0 {
		start = 0
	}
	bars := aug.Series.Bars[start:]
	rows := aug.Rows[start:]

	x := make([]time.Time, len(bars))
	closes := make([]float64, len(bars))
	resistance := make([]float64, len(bars))
	support := make([]float64, len(bars))
	for i, b := range bars {
		x[i] = b.Time
		closes[i] = b.Close
		resistance[i] = snap.Resistance
		support[i] = snap.Support
	}

	fastX, fastY := emaPoints(bars, rows, func(r model.IndicatorRow) model.Value { return r.FastEMA })
	slowX, slowY := emaPoints(bars, rows, func(r model.IndicatorRow) model.Value { return r.SlowEMA })

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s %s", aug.Series.Symbol, aug.Series.Interval),
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeHourValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Price",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Close",
				XValues: x,
				YValues: closes,
			},
			chart.TimeSeries{
				Name:    "EMA fast",
				XValues: fastX,
				YValues: fastY,
				Style:   chart.Style{StrokeColor: drawing.ColorFromHex("ff8c00")},
			},
			chart.TimeSeries{
				Name:    "EMA slow",
				XValues: slowX,
				YValues: slowY,
				Style:   chart.Style{StrokeColor: drawing.ColorBlue},
			},
			chart.TimeSeries{
				Name:    "Resistance",
				XValues: x,
				YValues: resistance,
				Style: chart.Style{
					StrokeColor:     drawing.ColorRed.WithAlpha(120),
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
			chart.TimeSeries{
				Name:    "Support",
				XValues: x,
				YValues: support,
				Style: chart.Style{
					StrokeColor:     drawing.ColorGreen.WithAlpha(120),
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

// emaPoints collects only the defined cells of one EMA column.
func emaPoints(bars []model.Bar, rows []model.IndicatorRow, pick func(model.IndicatorRow) model.Value) ([]time.Time, []float64) {
	var x []time.Time
	var y []float64
	for i, r := range rows {
		v := pick(r)
		if !v.Valid {
			continue
		}
		x = append(x, bars[i].Time)
		y = append(y, v.Float)
	}
	return x, y
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
