package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appigoo/trend.v8/internal/collector"
)

// Config holds all application configuration.
type Config struct {
	Symbols  []string `yaml:"symbols"`
	Interval string   `yaml:"interval"`
	Engine   struct {
		FastEMA             int     `yaml:"fast_ema"`
		SlowEMA             int     `yaml:"slow_ema"`
		RSIWindow           int     `yaml:"rsi_window"`
		VolumeMAWindow      int     `yaml:"volume_ma_window"`
		ResistanceProximity float64 `yaml:"resistance_proximity"`
	} `yaml:"engine"`
	RefreshSeconds int `yaml:"refresh_seconds"`
	Volatility     struct {
		Symbol    string  `yaml:"symbol"`
		Interval  string  `yaml:"interval"`
		Threshold float64 `yaml:"threshold"`
	} `yaml:"volatility"`
	Charts struct {
		Dir string `yaml:"dir"` // empty disables PNG export
	} `yaml:"charts"`
	DataSource struct {
		BaseURL string `yaml:"base_url"` // empty selects the Yahoo fetcher
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment
// variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("MONITOR_SYMBOLS"); v != "" {
		cfg.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("MONITOR_INTERVAL"); v != "" {
		cfg.Interval = v
	}
	if v := os.Getenv("MONITOR_REFRESH_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RefreshSeconds = n
		}
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("BARS_API_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BARS_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("CHART_DIR"); v != "" {
		cfg.Charts.Dir = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = []string{"AAPL", "NVDA", "TSLA", "2330.TW"}
	}
	if cfg.Interval == "" {
		cfg.Interval = "1m"
	}
	if cfg.Engine.FastEMA == 0 {
		cfg.Engine.FastEMA = 9
	}
	if cfg.Engine.SlowEMA == 0 {
		cfg.Engine.SlowEMA = 21
	}
	if cfg.Engine.RSIWindow == 0 {
		cfg.Engine.RSIWindow = 14
	}
	if cfg.Engine.VolumeMAWindow == 0 {
		cfg.Engine.VolumeMAWindow = 10
	}
	if cfg.Engine.ResistanceProximity == 0 {
		cfg.Engine.ResistanceProximity = 0.998
	}
	if cfg.RefreshSeconds == 0 {
		cfg.RefreshSeconds = 60
	}
	if cfg.Volatility.Symbol == "" {
		cfg.Volatility.Symbol = "^VIX"
	}
	if cfg.Volatility.Interval == "" {
		cfg.Volatility.Interval = "2m"
	}
	if cfg.Volatility.Threshold == 0 {
		cfg.Volatility.Threshold = 0.2
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("symbols must not be empty")
	}
	if err := collector.ValidateInterval(c.Interval); err != nil {
		return fmt.Errorf("interval: %w", err)
	}
	if err := collector.ValidateInterval(c.Volatility.Interval); err != nil {
		return fmt.Errorf("volatility.interval: %w", err)
	}
	if c.Engine.FastEMA >= c.Engine.SlowEMA {
		return fmt.Errorf("engine.fast_ema (%d) must be shorter than engine.slow_ema (%d)",
			c.Engine.FastEMA, c.Engine.SlowEMA)
	}
	if c.RefreshSeconds <= 0 {
		return fmt.Errorf("refresh_seconds must be positive")
	}
	return nil
}

func splitSymbols(s string) []string {
	parts := strings.Split(s, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			symbols = append(symbols, strings.ToUpper(trimmed))
		}
	}
	return symbols
}
