package calculator

import (
	"testing"

	"github.com/appigoo/trend.v8/internal/model"
)

func TestPivot_StandardFormula(t *testing.T) {
	levels := Pivot(model.Bar{High: 110, Low: 90, Close: 100})
	if levels.Pivot != 100 {
		t.Errorf("pivot: expected 100, got %.2f", levels.Pivot)
	}
	if levels.Resistance != 110 {
		t.Errorf("resistance: expected 110, got %.2f", levels.Resistance)
	}
	if levels.Support != 90 {
		t.Errorf("support: expected 90, got %.2f", levels.Support)
	}
}

func TestPivot_SupportBelowResistance(t *testing.T) {
	tests := []model.Bar{
		{High: 105.5, Low: 99.2, Close: 103.1},
		{High: 50, Low: 48, Close: 49},
		{High: 1.2345, Low: 1.2001, Close: 1.2200},
	}
	for _, bar := range tests {
		levels := Pivot(bar)
		if levels.Support > levels.Resistance {
			t.Errorf("bar %+v: support %.4f above resistance %.4f", bar, levels.Support, levels.Resistance)
		}
	}
}
