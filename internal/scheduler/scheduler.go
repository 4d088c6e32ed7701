package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/appigoo/trend.v8/internal/collector"
	"github.com/appigoo/trend.v8/internal/model"
	"github.com/appigoo/trend.v8/internal/notifier"
	"github.com/appigoo/trend.v8/internal/render"
	"github.com/appigoo/trend.v8/internal/strategy"
	"github.com/appigoo/trend.v8/internal/volatility"
)

// Monitor drives the refresh cycle: read the volatility index, fetch
// and analyze each symbol in list order, render, then wait for the
// next tick. One symbol's failure never aborts the cycle.
type Monitor struct {
	Cron       *cron.Cron
	Collector  *collector.Collector
	Engine     strategy.Config
	Symbols    []string
	Volatility *volatility.Reader
	Notifier   *notifier.TelegramNotifier
	ChartDir   string
	Out        io.Writer
	Ctx        context.Context

	mu            sync.Mutex
	lastDashboard string
	lastAlerts    map[string]string
}

// NewMonitor creates a Monitor writing its dashboard to out.
func NewMonitor(ctx context.Context, col *collector.Collector, engine strategy.Config,
	symbols []string, vix *volatility.Reader, tn *notifier.TelegramNotifier,
	chartDir string, out io.Writer) *Monitor {
	return &Monitor{
		Cron:       cron.New(),
		Collector:  col,
		Engine:     engine,
		Symbols:    symbols,
		Volatility: vix,
		Notifier:   tn,
		ChartDir:   chartDir,
		Out:        out,
		Ctx:        ctx,
		lastAlerts: make(map[string]string),
	}
}

// Start runs one cycle immediately, then repeats on the refresh
// cadence until Stop.
func (m *Monitor) Start(refresh time.Duration) error {
	if _, err := m.Cron.AddFunc(fmt.Sprintf("@every %s", refresh), m.RunCycle); err != nil {
		return fmt.Errorf("register refresh cycle: %w", err)
	}
	go m.RunCycle()
	m.Cron.Start()
	log.Printf("[INFO] monitor started, refresh every %s", refresh)
	return nil
}

// Stop stops the refresh loop. A running cycle finishes on its own.
func (m *Monitor) Stop() {
	m.Cron.Stop()
	log.Println("[INFO] monitor stopped")
}

// RunCycle executes one full refresh iteration.
func (m *Monitor) RunCycle() {
	started := time.Now()
	vix := m.Volatility.Read()

	results := make([]render.SymbolResult, 0, len(m.Symbols))
	for _, sym := range m.Symbols {
		results = append(results, m.analyzeSymbol(sym))
	}

	dashboard := render.FormatDashboard(vix, results, time.Now())
	fmt.Fprintln(m.Out, dashboard)

	m.mu.Lock()
	m.lastDashboard = dashboard
	m.mu.Unlock()

	log.Printf("[INFO] cycle done: %d symbols in %s", len(m.Symbols), time.Since(started).Round(time.Millisecond))
}

func (m *Monitor) analyzeSymbol(symbol string) render.SymbolResult {
	series, err := m.Collector.Collect(symbol)
	if err != nil {
		if !errors.Is(err, collector.ErrNoData) {
			log.Printf("[WARN] fetch %s: %v", symbol, err)
		}
		return render.SymbolResult{Symbol: symbol, Status: "no data"}
	}

	aug, snap, err := strategy.Analyze(series, m.Engine)
	if err != nil {
		if errors.Is(err, strategy.ErrInsufficientData) {
			return render.SymbolResult{Symbol: symbol, Status: "insufficient data"}
		}
		log.Printf("[ERROR] analyze %s: %v", symbol, err)
		return render.SymbolResult{Symbol: symbol, Status: "analysis failed"}
	}

	if m.ChartDir != "" {
		path := filepath.Join(m.ChartDir, symbol+".png")
		if err := render.WriteChartPNG(path, aug, snap); err != nil {
			log.Printf("[WARN] chart %s: %v", symbol, err)
		}
	}

	if snap.Alert.Severity == model.SeverityCritical {
		m.notifyCritical(snap)
	}

	return render.SymbolResult{Symbol: symbol, Snapshot: snap}
}

// notifyCritical pushes a crossover alert, deduplicated so the same
// signal is not re-sent every refresh while it persists.
func (m *Monitor) notifyCritical(snap *model.Snapshot) {
	if !m.Notifier.Enabled() {
		return
	}

	m.mu.Lock()
	dup := m.lastAlerts[snap.Symbol] == snap.Alert.Message
	if !dup {
		m.lastAlerts[snap.Symbol] = snap.Alert.Message
	}
	m.mu.Unlock()
	if dup {
		return
	}

	if err := m.Notifier.SendWithRetry(m.Ctx, notifier.FormatAlert(snap), 3); err != nil {
		log.Printf("[ERROR] send alert for %s: %v", snap.Symbol, err)
	}
}

// HandleCommand processes a user command and returns a reply.
func (m *Monitor) HandleCommand(command string) string {
	switch command {
	case "/status":
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.lastDashboard == "" {
			return "no cycle completed yet"
		}
		return m.lastDashboard
	case "/refresh":
		go m.RunCycle()
		return "refresh triggered"
	default:
		return "commands:\n• /status — latest dashboard\n• /refresh — run a cycle now"
	}
}
