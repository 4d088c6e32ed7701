package strategy

import "github.com/appigoo/trend.v8/internal/model"

// ruleInput carries everything an alert predicate may inspect.
type ruleInput struct {
	Prev       model.IndicatorRow
	Last       model.IndicatorRow
	Close      float64
	Resistance float64
	Proximity  float64
}

// rule is one entry of the ordered classification chain.
type rule struct {
	Name     string
	Message  string
	Severity model.Severity
	Match    func(in ruleInput) bool
}

func crossReady(in ruleInput) bool {
	return in.Prev.FastEMA.Valid && in.Prev.SlowEMA.Valid &&
		in.Last.FastEMA.Valid && in.Last.SlowEMA.Valid
}

// alertRules is evaluated top to bottom, first match wins. The two
// crossover predicates partition on strict vs. non-strict inequality,
// so they can never both match.
var alertRules = []rule{
	{
		Name:     "golden_cross",
		Message:  "golden cross",
		Severity: model.SeverityCritical,
		Match: func(in ruleInput) bool {
			return crossReady(in) &&
				in.Prev.FastEMA.Float <= in.Prev.SlowEMA.Float &&
				in.Last.FastEMA.Float > in.Last.SlowEMA.Float
		},
	},
	{
		Name:     "death_cross",
		Message:  "death cross",
		Severity: model.SeverityCritical,
		Match: func(in ruleInput) bool {
			return crossReady(in) &&
				in.Prev.FastEMA.Float >= in.Prev.SlowEMA.Float &&
				in.Last.FastEMA.Float < in.Last.SlowEMA.Float
		},
	},
	{
		Name:     "near_resistance",
		Message:  "near resistance",
		Severity: model.SeverityCaution,
		Match: func(in ruleInput) bool {
			return in.Close >= in.Resistance*in.Proximity
		},
	},
}

// defaultAlert applies when no rule matches.
var defaultAlert = model.Alert{Message: "monitoring", Severity: model.SeverityNormal}

// classify runs the rule chain.
func classify(in ruleInput) model.Alert {
	for _, r := range alertRules {
		if r.Match(in) {
			return model.Alert{Message: r.Message, Severity: r.Severity}
		}
	}
	return defaultAlert
}
