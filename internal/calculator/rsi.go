package calculator

import "github.com/appigoo/trend.v8/internal/model"

// RSISeries computes the Wilder-smoothed relative strength index over
// the given window, one cell per input value. Cells are undefined until
// window deltas exist, i.e. the first defined cell is at index window.
// Defined cells are always within [0, 100]; when the average loss is
// zero the index saturates at 100.
func RSISeries(values []float64, window int) []model.Value {
	out := make([]model.Value, len(values))
	if window <= 0 || len(values) < window+1 {
		return out
	}

	// Initial averages over the first window deltas.
	var avgGain, avgLoss float64
	for i := 1; i <= window; i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(window)
	avgLoss /= float64(window)
	out[window] = model.Some(rsiFrom(avgGain, avgLoss))

	// Wilder smoothing for the remaining bars.
	for i := window + 1; i < len(values); i++ {
		change := values[i] - values[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(window-1) + gain) / float64(window)
		avgLoss = (avgLoss*float64(window-1) + loss) / float64(window)
		out[i] = model.Some(rsiFrom(avgGain, avgLoss))
	}
	return out
}

func rsiFrom(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
