package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// GoCache in-memory store backed by patrickmn/go-cache.
// go-cache guards its map internally, so reads and writes are safe
// under concurrent access without additional locking here.
type GoCache struct {
	store *gocache.Cache
}

// NewGoCache creates a new GoCache instance.
// defaultExpiration applies to entries stored with ttl 0;
// cleanupInterval controls how often expired entries are evicted.
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{
		store: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves values for the given keys. An expired entry counts
// as missing.
func (gc *GoCache) Get(keys []string) (map[string][]byte, []string) {
	found := make(map[string][]byte)
	missing := make([]string, 0)

	for _, key := range keys {
		value, ok := gc.store.Get(key)
		if !ok {
			missing = append(missing, key)
			continue
		}
		data, ok := value.([]byte)
		if !ok {
			missing = append(missing, key)
			continue
		}
		found[key] = data
	}

	return found, missing
}

// Set stores key/value pairs with the given TTL.
// A ttl of 0 uses the store's default expiration.
func (gc *GoCache) Set(data map[string][]byte, ttl time.Duration) {
	for key, value := range data {
		gc.store.Set(key, value, ttl)
	}
}

// Delete removes entries by key
func (gc *GoCache) Delete(keys []string) {
	for _, key := range keys {
		gc.store.Delete(key)
	}
}

// Clear removes all entries
func (gc *GoCache) Clear() {
	gc.store.Flush()
}

// ItemCount returns the number of stored entries, including any
// expired entries not yet evicted
func (gc *GoCache) ItemCount() int {
	return gc.store.ItemCount()
}
