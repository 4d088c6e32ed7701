package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
symbols: [aapl, nvda]
interval: 5m
engine:
  fast_ema: 12
refresh_seconds: 90
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Symbols) != 2 {
		t.Errorf("expected 2 symbols, got %v", cfg.Symbols)
	}
	if cfg.Interval != "5m" || cfg.RefreshSeconds != 90 {
		t.Errorf("file values not applied: %s %d", cfg.Interval, cfg.RefreshSeconds)
	}
	if cfg.Engine.FastEMA != 12 {
		t.Errorf("expected fast_ema 12, got %d", cfg.Engine.FastEMA)
	}
	// Untouched fields fall back to defaults.
	if cfg.Engine.SlowEMA != 21 || cfg.Engine.RSIWindow != 14 || cfg.Engine.VolumeMAWindow != 10 {
		t.Errorf("defaults not applied: %+v", cfg.Engine)
	}
	if cfg.Engine.ResistanceProximity != 0.998 {
		t.Errorf("expected proximity 0.998, got %g", cfg.Engine.ResistanceProximity)
	}
	if cfg.Volatility.Symbol != "^VIX" || cfg.Volatility.Threshold != 0.2 {
		t.Errorf("volatility defaults not applied: %+v", cfg.Volatility)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Symbols) == 0 || cfg.Interval != "1m" || cfg.RefreshSeconds != 60 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MONITOR_SYMBOLS", "msft, amd ,")
	t.Setenv("MONITOR_INTERVAL", "15m")
	t.Setenv("MONITOR_REFRESH_SECONDS", "120")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Symbols) != 2 || cfg.Symbols[0] != "MSFT" || cfg.Symbols[1] != "AMD" {
		t.Errorf("symbol override not applied: %v", cfg.Symbols)
	}
	if cfg.Interval != "15m" || cfg.RefreshSeconds != 120 {
		t.Errorf("overrides not applied: %s %d", cfg.Interval, cfg.RefreshSeconds)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad interval", func(c *Config) { c.Interval = "4m" }},
		{"fast not below slow", func(c *Config) { c.Engine.FastEMA = 21; c.Engine.SlowEMA = 21 }},
		{"no symbols", func(c *Config) { c.Symbols = nil }},
		{"zero refresh", func(c *Config) { c.RefreshSeconds = -5 }},
		{"bad volatility interval", func(c *Config) { c.Volatility.Interval = "1d" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
