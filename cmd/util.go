package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"stockdash/api"
	"stockdash/internal/config"
	"stockdash/internal/logger"
	"stockdash/internal/repository"
	"stockdash/internal/service"
	"stockdash/internal/util"
	"stockdash/pkg/alphavantage"
)

const ConfigPathEnvVar = "CONFIG_PATH"

// yahooLookback covers the current year plus enough history for a
// meaningful Sharpe ratio.
const yahooLookback = 400 * 24 * time.Hour

// ConfigPath returns the flag value if set, then CONFIG_PATH, then
// config.yaml in the working directory.
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(ConfigPathEnvVar); v != "" {
		return v
	}
	return "config.yaml"
}

// NewMarketDataRepository builds the configured provider behind the rate
// limiter and circuit breaker.
func NewMarketDataRepository(cfg *config.Config, secrets *util.Secrets) (repository.MarketDataRepository, error) {
	var inner repository.MarketDataRepository
	switch cfg.MarketData.Provider {
	case config.ProviderAlphaVantage:
		if secrets.AlphaVantageApiKey == "" {
			return nil, fmt.Errorf("alpha vantage api key is required for the %s provider", cfg.MarketData.Provider)
		}
		client := alphavantage.NewClient(
			&http.Client{Timeout: 30 * time.Second},
			secrets.AlphaVantageApiKey,
			cfg.MarketData.BaseURL,
			cfg.MarketData.OutputSize,
		)
		inner = repository.NewAlphaVantageRepository(client)
	case config.ProviderYahoo:
		inner = repository.NewYahooPriceRepository(yahooLookback)
	case config.ProviderAlpaca:
		if secrets.Alpaca.ApiKey == "" || secrets.Alpaca.ApiSecret == "" {
			return nil, fmt.Errorf("alpaca api key and secret are required for the %s provider", cfg.MarketData.Provider)
		}
		inner = repository.NewAlpacaPriceRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	case config.ProviderCsv:
		inner = repository.NewCsvPriceRepository(cfg.MarketData.CsvPath)
	default:
		return nil, fmt.Errorf("unknown market data provider %q", cfg.MarketData.Provider)
	}

	return repository.NewGuardedMarketDataRepository(inner, cfg.RequestsPerMinute()), nil
}

func InitializeDependencies(configPath string) (*api.ApiHandler, *config.Config, error) {
	cfg, err := config.Load(ConfigPath(configPath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	marketDataRepository, err := NewMarketDataRepository(cfg, secrets)
	if err != nil {
		return nil, nil, err
	}

	analysisService := service.NewAnalysisService(
		marketDataRepository,
		cfg.SortChronologically(),
	)

	apiHandler := &api.ApiHandler{
		AnalysisService:     analysisService,
		DefaultSymbol:       cfg.Analysis.DefaultSymbol,
		DefaultRiskFreeRate: cfg.Analysis.RiskFreeRate,
		Metrics:             api.NewMetrics(),
		Logger:              logger.New(),
	}

	return apiHandler, cfg, nil
}
