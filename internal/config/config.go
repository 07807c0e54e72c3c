package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"TrendSentinel/internal/analyzer"
)

// Config holds all application configuration.
type Config struct {
	Mail struct {
		SMTPHost  string `yaml:"smtp_host"`
		SMTPPort  int    `yaml:"smtp_port"`
		Sender    string `yaml:"sender"`
		Password  string `yaml:"password"`
		Recipient string `yaml:"recipient"`
	} `yaml:"mail"`
	DataSource struct {
		BaseURL    string `yaml:"base_url"`
		APIKey     string `yaml:"api_key"`
		SymbolFile string `yaml:"symbol_file"`
	} `yaml:"data_source"`
	Scan struct {
		WindowDays int     `yaml:"window_days"`
		Threshold  float64 `yaml:"proximity_threshold"`
	} `yaml:"scan"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	LogFile string `yaml:"log_file"`
	Proxy   string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	// Zero is a legal threshold, so the YAML key's presence is tracked with
	// a pointer shadow before defaults run.
	var shadow struct {
		Scan struct {
			Threshold *float64 `yaml:"proximity_threshold"`
		} `yaml:"scan"`
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		if err := yaml.Unmarshal(data, &shadow); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Defaults fill unset YAML fields; env overrides run afterwards so an
	// explicit PROXIMITY_THRESHOLD=0 survives.
	if cfg.Mail.SMTPHost == "" {
		cfg.Mail.SMTPHost = "smtp.gmail.com"
	}
	if cfg.Mail.SMTPPort == 0 {
		cfg.Mail.SMTPPort = 587
	}
	if cfg.DataSource.SymbolFile == "" {
		cfg.DataSource.SymbolFile = "symbols.txt"
	}
	if cfg.Scan.WindowDays == 0 {
		cfg.Scan.WindowDays = 30
	}
	if shadow.Scan.Threshold == nil && cfg.Scan.Threshold == 0 {
		cfg.Scan.Threshold = analyzer.DefaultThreshold
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "trendsentinel.log"
	}

	// Environment variable overrides
	if v := os.Getenv("SENDER_EMAIL"); v != "" {
		cfg.Mail.Sender = v
	}
	if v := os.Getenv("SENDER_PASSWORD"); v != "" {
		cfg.Mail.Password = v
	}
	if v := os.Getenv("RECEIVER_EMAIL"); v != "" {
		cfg.Mail.Recipient = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Mail.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Mail.SMTPPort = p
		}
	}
	if v := os.Getenv("TICKER_FILE"); v != "" {
		cfg.DataSource.SymbolFile = v
	}
	if v := os.Getenv("VSTRADER_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("VSTRADER_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("WINDOW_DAYS"); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			cfg.Scan.WindowDays = d
		}
	}
	if v := os.Getenv("PROXIMITY_THRESHOLD"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scan.Threshold = t
		}
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Mail.Sender == "" {
		return fmt.Errorf("mail.sender is required")
	}
	if c.Mail.Password == "" {
		return fmt.Errorf("mail.password is required")
	}
	if c.Mail.Recipient == "" {
		return fmt.Errorf("mail.recipient is required")
	}
	if c.Scan.WindowDays <= 0 {
		return fmt.Errorf("scan.window_days must be positive")
	}
	if c.Scan.Threshold < 0 {
		return fmt.Errorf("scan.proximity_threshold must not be negative")
	}
	return nil
}
