package calculator

import "github.com/appigoo/trend.v8/internal/model"

// PivotLevels holds standard pivot-point projections for one bar.
type PivotLevels struct {
	Pivot      float64
	Resistance float64
	Support    float64
}

// Pivot computes the classic single-level pivot point from a bar:
// P = (H+L+C)/3, R1 = 2P-L, S1 = 2P-H.
func Pivot(bar model.Bar) PivotLevels {
	p := (bar.High + bar.Low + bar.Close) / 3
	return PivotLevels{
		Pivot:      p,
		Resistance: 2*p - bar.Low,
		Support:    2*p - bar.High,
	}
}
