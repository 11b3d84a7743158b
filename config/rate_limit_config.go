package config

import "fmt"

// Default requests per minute allowed per caller IP
const defaultRequestsPerMinute = 60

// RateLimitConfig configures the per-caller token bucket at the API boundary
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"` // Sustained rate per caller IP
	Burst             int `yaml:"burst"`               // Bucket size; 0 derives it from the rate
}

// Validate validates the RateLimitConfig configuration
func (c *RateLimitConfig) Validate() error {
	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("requests_per_minute must not be negative, got %d", c.RequestsPerMinute)
	}
	if c.Burst < 0 {
		return fmt.Errorf("burst must not be negative, got %d", c.Burst)
	}
	return nil
}

// GetRequestsPerMinute returns the configured rate or the default
func (c *RateLimitConfig) GetRequestsPerMinute() int {
	if c.RequestsPerMinute > 0 {
		return c.RequestsPerMinute
	}
	return defaultRequestsPerMinute
}

// GetBurst returns the configured burst, deriving one request per
// second of sustained rate when not set
func (c *RateLimitConfig) GetBurst() int {
	if c.Burst > 0 {
		return c.Burst
	}
	burst := c.GetRequestsPerMinute() / 6
	if burst < 1 {
		burst = 1
	}
	return burst
}
