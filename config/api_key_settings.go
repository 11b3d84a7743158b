package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// APIKeySettings holds the CoinGecko pro API key, kept in a separate
// settings file so the main config can be committed
type APIKeySettings struct {
	Key string `yaml:"api_key"`
}

// HasKey reports whether a non-empty API key is configured
func (s *APIKeySettings) HasKey() bool {
	return s != nil && s.Key != ""
}

// LoadAPIKeySettings loads the API key settings file. A missing or
// unreadable file is not fatal: the public API works without a key.
// The COINGECKO_API_KEY environment variable takes precedence.
func LoadAPIKeySettings(path string) *APIKeySettings {
	settings := &APIKeySettings{}

	if key := os.Getenv("COINGECKO_API_KEY"); key != "" {
		settings.Key = key
		return settings
	}

	if path == "" {
		return settings
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Error loading API key from %s: %v. Using public API without authentication.", path, err)
		return settings
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		log.Printf("Warning: Error parsing API key file %s: %v. Using public API without authentication.", path, err)
		return &APIKeySettings{}
	}

	return settings
}
