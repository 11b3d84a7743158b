package config

import (
	"fmt"
	"time"
)

const (
	// Default base URL for the CoinGecko public API
	COINGECKO_DEFAULT_ENDPOINT = "https://api.coingecko.com/api/v3/"

	defaultUpstreamTimeout = 30 * time.Second
)

// CoingeckoConfig configures the upstream CoinGecko client
type CoingeckoConfig struct {
	Endpoint   string        `yaml:"endpoint"`     // Base URL of the CoinGecko REST API
	APIKeyFile string        `yaml:"api_key_file"` // Optional settings file holding the pro API key
	Timeout    time.Duration `yaml:"timeout"`      // Total request timeout, single attempt
}

// Validate validates the CoingeckoConfig configuration
func (c *CoingeckoConfig) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %v", c.Timeout)
	}
	return nil
}

// GetEndpoint returns the configured upstream endpoint or the public default
func (c *CoingeckoConfig) GetEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return COINGECKO_DEFAULT_ENDPOINT
}

// GetTimeout returns the configured request timeout or the 30s default
func (c *CoingeckoConfig) GetTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultUpstreamTimeout
}
