package config

import "time"

// CacheConfig configures the in-memory cache and per-key TTLs
type CacheConfig struct {
	GoCache GoCacheConfig `yaml:"go_cache"`

	// TTLs for the individual cache keys used by the coins service
	TopListTTL  time.Duration `yaml:"top_list_ttl"`  // "top_list" entry
	FullListTTL time.Duration `yaml:"full_list_ttl"` // "full_list" entry
	CoinTTL     time.Duration `yaml:"coin_ttl"`      // per-coin detail entries
}

// GoCacheConfig configuration for the underlying go-cache store
type GoCacheConfig struct {
	// DefaultExpiration default expiration time for cache items,
	// used when an entry is stored without an explicit TTL
	DefaultExpiration time.Duration `yaml:"default_expiration"`

	// CleanupInterval interval for evicting expired items
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// Enabled whether go-cache is enabled
	Enabled bool `yaml:"enabled"`
}

// GetTopListTTL returns the TTL for the cached top markets list (default 60s)
func (c *CacheConfig) GetTopListTTL() time.Duration {
	if c.TopListTTL > 0 {
		return c.TopListTTL
	}
	return 60 * time.Second
}

// GetFullListTTL returns the TTL for the cached full coin list (default 5m)
func (c *CacheConfig) GetFullListTTL() time.Duration {
	if c.FullListTTL > 0 {
		return c.FullListTTL
	}
	return 300 * time.Second
}

// GetCoinTTL returns the TTL for cached per-coin details (default 60s)
func (c *CacheConfig) GetCoinTTL() time.Duration {
	if c.CoinTTL > 0 {
		return c.CoinTTL
	}
	return 60 * time.Second
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		GoCache: GoCacheConfig{
			DefaultExpiration: 5 * time.Minute,
			CleanupInterval:   10 * time.Minute,
			Enabled:           true,
		},
	}
}
