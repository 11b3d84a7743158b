package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the price proxy
type Config struct {
	Port      string          `yaml:"port"`
	Debug     bool            `yaml:"debug"`
	Coingecko CoingeckoConfig `yaml:"coingecko"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Refresher RefresherConfig `yaml:"refresher"`

	// APIKey is loaded from Coingecko.APIKeyFile, not from the main config
	APIKey *APIKeySettings
}

// LoadConfig reads the YAML config file, applies environment overrides
// and loads the API key settings file when one is configured
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyEnvOverrides()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.APIKey = LoadAPIKeySettings(config.Coingecko.APIKeyFile)

	return &config, nil
}

// applyEnvOverrides lets the environment win over file values,
// matching how the service is deployed
func (c *Config) applyEnvOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
	if endpoint := os.Getenv("COINGECKO_ENDPOINT"); endpoint != "" {
		c.Coingecko.Endpoint = endpoint
	}
	if keyFile := os.Getenv("COINGECKO_API_KEY_FILE"); keyFile != "" {
		c.Coingecko.APIKeyFile = keyFile
	}
	if debug := os.Getenv("DEBUG"); debug == "true" || debug == "1" {
		c.Debug = true
	}
}

// Validate validates all config sections
func (c *Config) Validate() error {
	if err := c.Coingecko.Validate(); err != nil {
		return fmt.Errorf("coingecko configuration validation failed: %w", err)
	}
	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("rate limit configuration validation failed: %w", err)
	}
	return nil
}

// GetPort returns the configured HTTP port or the default
func (c *Config) GetPort() string {
	if c.Port != "" {
		return c.Port
	}
	return "8080"
}
