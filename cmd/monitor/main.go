package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appigoo/trend.v8/internal/collector"
	"github.com/appigoo/trend.v8/internal/config"
	"github.com/appigoo/trend.v8/internal/notifier"
	"github.com/appigoo/trend.v8/internal/scheduler"
	"github.com/appigoo/trend.v8/internal/strategy"
	"github.com/appigoo/trend.v8/internal/volatility"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] trend monitor starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector and engine config
	col := collector.NewCollector(fetcher, cfg.Interval)
	engine := strategy.Config{
		FastLen:             cfg.Engine.FastEMA,
		SlowLen:             cfg.Engine.SlowEMA,
		RSIWindow:           cfg.Engine.RSIWindow,
		VolMAWindow:         cfg.Engine.VolumeMAWindow,
		ResistanceProximity: cfg.Engine.ResistanceProximity,
	}

	// Init volatility reader
	vix := volatility.NewReader(fetcher, cfg.Volatility.Symbol, cfg.Volatility.Interval, cfg.Volatility.Threshold)

	// Init Telegram notifier (optional)
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init monitor
	mon := scheduler.NewMonitor(ctx, col, engine, cfg.Symbols, vix, tn, cfg.Charts.Dir, os.Stdout)
	if err := mon.Start(time.Duration(cfg.RefreshSeconds) * time.Second); err != nil {
		log.Fatalf("[FATAL] start monitor: %v", err)
	}
	defer mon.Stop()

	// Start Telegram polling when configured
	if tn.Enabled() {
		go tn.StartPolling(ctx, mon.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	log.Println("[INFO] trend monitor is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] trend monitor stopped")
}
