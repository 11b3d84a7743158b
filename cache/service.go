package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptodash/price-proxy/config"
)

// Service implements Cache on top of GoCache
type Service struct {
	goCache *GoCache
	config  config.CacheConfig
}

// NewService creates a new cache service with the given configuration
func NewService(cfg config.CacheConfig) *Service {
	goCacheCfg := cfg.GoCache
	if !goCacheCfg.Enabled || goCacheCfg.DefaultExpiration <= 0 {
		// Keep a minimal store even when disabled so consumers
		// never need a nil check
		goCacheCfg.DefaultExpiration = 1 * time.Minute
		goCacheCfg.CleanupInterval = 2 * time.Minute
	}

	return &Service{
		goCache: NewGoCache(goCacheCfg.DefaultExpiration, goCacheCfg.CleanupInterval),
		config:  cfg,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.goCache == nil {
		return fmt.Errorf("cache service not properly initialized")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	if s.goCache != nil {
		s.goCache.Clear()
	}
}

// Get retrieves data for the given keys from the local store
func (s *Service) Get(keys []string) (map[string][]byte, []string, error) {
	found, missing := s.goCache.Get(keys)
	return found, missing, nil
}

// Set stores data with the specified TTL
func (s *Service) Set(data map[string][]byte, ttl time.Duration) error {
	s.goCache.Set(data, ttl)
	return nil
}

// GetOrLoad returns cached data for keys, loading and caching the
// missing ones. A loader failure propagates and caches nothing;
// concurrent misses for the same key may each invoke the loader.
func (s *Service) GetOrLoad(keys []string, loader LoaderFunc, ttl time.Duration) (map[string][]byte, error) {
	if len(keys) == 0 {
		return make(map[string][]byte), nil
	}

	found, missing := s.goCache.Get(keys)
	if len(missing) == 0 {
		return found, nil
	}

	loaded, err := loader(missing)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	if len(loaded) > 0 {
		s.goCache.Set(loaded, ttl)
	}

	for key, value := range loaded {
		found[key] = value
	}

	return found, nil
}

// Delete removes entries by key
func (s *Service) Delete(keys []string) {
	s.goCache.Delete(keys)
}

// ItemCount returns the number of entries in the store
func (s *Service) ItemCount() int {
	return s.goCache.ItemCount()
}
