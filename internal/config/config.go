package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ProviderAlphaVantage = "alphavantage"
	ProviderYahoo        = "yahoo"
	ProviderAlpaca       = "alpaca"
	ProviderCsv          = "csv"
)

// Config holds the non-secret settings. Credentials live in util.Secrets.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	MarketData struct {
		Provider          string `yaml:"provider"`
		BaseURL           string `yaml:"base_url"`
		OutputSize        string `yaml:"output_size"`
		// RequestsPerMinute caps upstream calls; 0 turns throttling off.
		RequestsPerMinute *int   `yaml:"requests_per_minute"`
		CsvPath           string `yaml:"csv_path"`
	} `yaml:"market_data"`
	Analysis struct {
		DefaultSymbol string  `yaml:"default_symbol"`
		RiskFreeRate  float64 `yaml:"risk_free_rate"`
		// Chronological sorts prices by date before computing returns.
		Chronological *bool `yaml:"chronological"`
	} `yaml:"analysis"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("MARKET_DATA_PROVIDER"); v != "" {
		cfg.MarketData.Provider = v
	}
	if v := os.Getenv("MARKET_DATA_CSV_PATH"); v != "" {
		cfg.MarketData.CsvPath = v
	}
	if v := os.Getenv("MARKET_DATA_REQUESTS_PER_MINUTE"); v != "" {
		if requestsPerMinute, err := strconv.Atoi(v); err == nil {
			cfg.MarketData.RequestsPerMinute = &requestsPerMinute
		}
	}
	if v := os.Getenv("DEFAULT_SYMBOL"); v != "" {
		cfg.Analysis.DefaultSymbol = v
	}
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Analysis.RiskFreeRate = rate
		}
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3009
	}
	if cfg.MarketData.Provider == "" {
		cfg.MarketData.Provider = ProviderAlphaVantage
	}
	cfg.MarketData.Provider = strings.ToLower(cfg.MarketData.Provider)
	if cfg.MarketData.BaseURL == "" {
		cfg.MarketData.BaseURL = "https://www.alphavantage.co"
	}
	if cfg.MarketData.OutputSize == "" {
		cfg.MarketData.OutputSize = "compact"
	}
	if cfg.MarketData.RequestsPerMinute == nil {
		requestsPerMinute := 5
		cfg.MarketData.RequestsPerMinute = &requestsPerMinute
	}
	if cfg.Analysis.DefaultSymbol == "" {
		cfg.Analysis.DefaultSymbol = "ICLN"
	}
	if cfg.Analysis.Chronological == nil {
		chronological := true
		cfg.Analysis.Chronological = &chronological
	}

	return cfg, nil
}

func (c *Config) RequestsPerMinute() int {
	if c.MarketData.RequestsPerMinute == nil {
		return 0
	}
	return *c.MarketData.RequestsPerMinute
}

func (c *Config) SortChronologically() bool {
	return c.Analysis.Chronological == nil || *c.Analysis.Chronological
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	switch c.MarketData.Provider {
	case ProviderAlphaVantage, ProviderYahoo, ProviderAlpaca:
	case ProviderCsv:
		if c.MarketData.CsvPath == "" {
			return fmt.Errorf("market_data.csv_path is required for the csv provider")
		}
	default:
		return fmt.Errorf("unknown market_data.provider %q", c.MarketData.Provider)
	}
	if c.MarketData.OutputSize != "compact" && c.MarketData.OutputSize != "full" {
		return fmt.Errorf("market_data.output_size must be compact or full, got %q", c.MarketData.OutputSize)
	}
	if c.RequestsPerMinute() < 0 {
		return fmt.Errorf("market_data.requests_per_minute must not be negative")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	return nil
}
