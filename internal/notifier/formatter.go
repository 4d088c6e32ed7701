package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/appigoo/trend.v8/internal/model"
)

// FormatAlert formats a critical snapshot into a Telegram message.
func FormatAlert(snap *model.Snapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🚨 <b>%s: %s</b> | %s\n\n",
		snap.Symbol, snap.Alert.Message, time.Now().Format("15:04:05")))
	b.WriteString(fmt.Sprintf("Price: %.2f (%+.2f%%)\n", snap.Price, snap.ChangePct))
	b.WriteString(fmt.Sprintf("Trend: %s | RSI(14): %.1f | Vol: x%.1f\n",
		snap.Trend, snap.RSI, snap.VolumeRatio))
	b.WriteString(fmt.Sprintf("Resistance: %.2f | Support: %.2f\n", snap.Resistance, snap.Support))

	return b.String()
}
