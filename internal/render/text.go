package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/appigoo/trend.v8/internal/model"
)

// SymbolResult is one symbol's outcome within a refresh cycle.
// Snapshot is nil when Status explains why (no data, warming up).
type SymbolResult struct {
	Symbol   string
	Snapshot *model.Snapshot
	Status   string
}

// FormatBanner renders the market-wide volatility annotation.
func FormatBanner(vix model.VolatilityStatus, at time.Time) string {
	hint := "market stable, technical setups tradable"
	if vix.Rising {
		hint = "volatility rising, reduce exposure"
	}
	return fmt.Sprintf("VIX %.2f (%+.2f) | %s | updated %s",
		vix.Level, vix.Delta, hint, at.Format("15:04:05"))
}

// FormatDashboard renders the full text dashboard for one cycle:
// volatility banner plus one signal card per symbol.
func FormatDashboard(vix model.VolatilityStatus, results []SymbolResult, at time.Time) string {
	var b strings.Builder

	b.WriteString(FormatBanner(vix, at))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 72))
	b.WriteString("\n")

	for _, r := range results {
		if r.Snapshot == nil {
			b.WriteString(fmt.Sprintf("%-10s ⚠️  %s\n", r.Symbol, r.Status))
			continue
		}
		s := r.Snapshot
		b.WriteString(fmt.Sprintf("%-10s %s %s\n", r.Symbol, severityMark(s.Alert.Severity), s.Alert.Message))
		b.WriteString(fmt.Sprintf("           price %.2f (%+.2f%%) | trend %s | RSI %.1f | vol x%.1f\n",
			s.Price, s.ChangePct, s.Trend, s.RSI, s.VolumeRatio))
		b.WriteString(fmt.Sprintf("           resistance %.2f | support %.2f\n", s.Resistance, s.Support))
	}

	return b.String()
}

func severityMark(sev model.Severity) string {
	switch sev {
	case model.SeverityCritical:
		return "🔴"
	case model.SeverityCaution:
		return "🟡"
	default:
		return "🟢"
	}
}
