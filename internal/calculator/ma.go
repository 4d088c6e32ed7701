package calculator

import "github.com/appigoo/trend.v8/internal/model"

// EMASeries computes the exponential moving average of values over the
// given length, one cell per input value. The first length-1 cells are
// undefined; the cell at index length-1 is seeded with the simple
// average of the first length values, after which the standard
// recurrence applies with smoothing factor 2/(length+1).
func EMASeries(values []float64, length int) []model.Value {
	out := make([]model.Value, len(values))
	if length <= 0 || len(values) < length {
		return out
	}

	sum := 0.0
	for i := 0; i < length; i++ {
		sum += values[i]
	}
	ema := sum / float64(length)
	out[length-1] = model.Some(ema)

	k := 2.0 / float64(length+1)
	for i := length; i < len(values); i++ {
		ema = values[i]*k + ema*(1-k)
		out[i] = model.Some(ema)
	}
	return out
}

// SMASeries computes the trailing simple moving average over the given
// window, one cell per input value. Cells before index window-1 are
// undefined.
func SMASeries(values []float64, window int) []model.Value {
	out := make([]model.Value, len(values))
	if window <= 0 || len(values) < window {
		return out
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = model.Some(sum / float64(window))
		}
	}
	return out
}

// Closes extracts closing prices from bars.
func Closes(bars []model.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// Volumes extracts volumes from bars.
func Volumes(bars []model.Bar) []float64 {
	vols := make([]float64, len(bars))
	for i, b := range bars {
		vols[i] = b.Volume
	}
	return vols
}
