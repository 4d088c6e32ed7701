package collector

import (
	"errors"
	"fmt"

	"github.com/appigoo/trend.v8/internal/model"
)

// ErrNoData signals that the provider has nothing for a symbol:
// unknown ticker, delisted instrument, or an empty recent window.
// It degrades to a per-symbol placeholder, never an aborted cycle.
var ErrNoData = errors.New("no data for symbol")

// Fetcher retrieves a trailing window of intraday bars for a symbol.
// Implementations must return bars in ascending time order and enough
// history for indicator warm-up (a 3-day trailing window in practice).
type Fetcher interface {
	FetchIntradayBars(symbol, interval string) ([]model.Bar, error)
	Name() string
}

var supportedIntervals = map[string]bool{
	"1m":  true,
	"2m":  true,
	"5m":  true,
	"15m": true,
}

// ValidateInterval rejects sampling intervals no provider supports.
func ValidateInterval(interval string) error {
	if !supportedIntervals[interval] {
		return fmt.Errorf("unsupported interval %q (want 1m, 2m, 5m or 15m)", interval)
	}
	return nil
}
