package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"stockdash/internal/logger"
)

type Secrets struct {
	AlphaVantageApiKey string        `json:"alphaVantage"`
	Alpaca             AlpacaSecrets `json:"alpaca"`
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

func secretsFile() string {
	switch strings.ToLower(os.Getenv(logger.EnvVar)) {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	return "/go/src/app/secrets.json"
}

// LoadSecrets reads provider credentials from the secrets file for the
// current environment. A missing file is fine as long as the credentials
// come from the environment instead.
func LoadSecrets() (*Secrets, error) {
	return loadSecretsFrom(secretsFile())
}

func loadSecretsFrom(path string) (*Secrets, error) {
	secrets := Secrets{}

	f, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	if len(f) > 0 {
		if err := json.Unmarshal(f, &secrets); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		secrets.AlphaVantageApiKey = v
	}
	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		secrets.Alpaca.ApiKey = v
	}
	if v := os.Getenv("ALPACA_API_SECRET"); v != "" {
		secrets.Alpaca.ApiSecret = v
	}
	if v := os.Getenv("ALPACA_ENDPOINT"); v != "" {
		secrets.Alpaca.Endpoint = v
	}

	return &secrets, nil
}
