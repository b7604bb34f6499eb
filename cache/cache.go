package cache

import "time"

// LoaderFunc loads values for keys missing from the cache.
// It returns a key->data map for the keys it could load.
type LoaderFunc func(missingKeys []string) (map[string][]byte, error)

// Cache is the read-through cache surface used by the data services
type Cache interface {
	// GetOrLoad returns cached data for the keys, calling loader for the
	// missing ones and caching what it returns with the given TTL.
	// A zero ttl uses the cache default expiration.
	GetOrLoad(keys []string, loader LoaderFunc, ttl time.Duration) (map[string][]byte, error)

	// Delete removes items from cache by keys
	Delete(keys []string)

	// Clear removes all items from cache
	Clear()
}
