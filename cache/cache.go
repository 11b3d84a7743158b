package cache

import "time"

//go:generate mockgen -destination=mocks/cache.go -package=mocks . Cache

// LoaderFunc loads data for keys that are missing from the cache.
// It receives the missing keys and returns a key->data map for them.
type LoaderFunc func(missingKeys []string) (map[string][]byte, error)

// Cache is a process-wide key/value store with per-entry expiry
type Cache interface {
	// Get retrieves data for the given keys, returning the found
	// entries and the list of keys that were missing or expired
	Get(keys []string) (map[string][]byte, []string, error)

	// Set stores data with the specified TTL; if ttl is 0 the
	// store's default expiration is used. Writes are last-writer-wins.
	Set(data map[string][]byte, ttl time.Duration) error

	// GetOrLoad returns cached data for the given keys, invoking
	// loader for the missing ones and caching what it returns with
	// the given TTL. If loader fails, the error propagates and
	// nothing is cached.
	GetOrLoad(keys []string, loader LoaderFunc, ttl time.Duration) (map[string][]byte, error)
}
