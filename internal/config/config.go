package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML strings like "30s" decode directly.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	dur, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(dur)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds all application configuration.
type Config struct {
	Tickers []string `yaml:"tickers"`
	Poll    struct {
		Interval    Duration `yaml:"interval"`
		Duration    Duration `yaml:"duration"` // 0 = run until interrupted
		HistoryDays int      `yaml:"history_days"`
	} `yaml:"poll"`
	FTD struct {
		FilePath string `yaml:"file_path"`
	} `yaml:"ftd"`
	Sinks struct {
		LogPath      string `yaml:"log_path"`
		ErrorLogPath string `yaml:"error_log_path"`
	} `yaml:"sinks"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; env overrides
// and defaults still apply.
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
	if v := os.Getenv("RADAR_TICKERS"); v != "" {
		cfg.Tickers = splitTickers(v)
	}
	if v := os.Getenv("RADAR_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Poll.Interval = Duration(d)
		}
	}
	if v := os.Getenv("RADAR_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Poll.Duration = Duration(d)
		}
	}
	if v := os.Getenv("RADAR_HISTORY_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Poll.HistoryDays = n
		}
	}
	if v := os.Getenv("RADAR_FTD_FILE"); v != "" {
		cfg.FTD.FilePath = v
	}
	if v := os.Getenv("RADAR_LOG_PATH"); v != "" {
		cfg.Sinks.LogPath = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Poll.Interval == 0 {
		cfg.Poll.Interval = Duration(30 * time.Second)
	}
	if cfg.Poll.HistoryDays == 0 {
		cfg.Poll.HistoryDays = 250
	}
	if cfg.Sinks.LogPath == "" {
		cfg.Sinks.LogPath = "data/ticker_log.csv"
	}
	if cfg.Sinks.ErrorLogPath == "" {
		cfg.Sinks.ErrorLogPath = "data/error_log.txt"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/trendscout.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers is required")
	}
	if c.Poll.Interval.Std() < time.Second {
		return fmt.Errorf("poll.interval must be at least 1s")
	}
	if c.Poll.Duration.Std() < 0 {
		return fmt.Errorf("poll.duration must not be negative")
	}
	if c.Poll.HistoryDays <= 0 {
		return fmt.Errorf("poll.history_days must be positive")
	}
	return nil
}

func splitTickers(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.ToUpper(strings.TrimSpace(p)); t != "" {
			out = append(out, t)
		}
	}
	return out
}
