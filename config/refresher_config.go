package config

import "time"

// RefresherConfig configures the optional background top-list warmer.
// Disabled by default: the service is cache-miss driven unless a
// deployment opts into keeping the hot key fresh.
type RefresherConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// GetInterval returns the refresh interval or the 60s default,
// matching the top-list TTL
func (c *RefresherConfig) GetInterval() time.Duration {
	if c.Interval > 0 {
		return c.Interval
	}
	return 60 * time.Second
}
