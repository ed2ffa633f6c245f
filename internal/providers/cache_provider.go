package providers

import (
	"fmt"
	"unsafe"

	"github.com/coocood/freecache"
	"github.com/pbaille/blueprint/internal/structures"
)

// MinCacheSizeMB keeps room for reading bodies: freecache refuses any entry
// larger than 1/1024 of its size, and a reading runs to about 2KB.
const MinCacheSizeMB = 4

type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

type CacheProvider struct {
	cache *freecache.Cache
	ttl   int
}

// NewCacheProvider caches rendered reading bodies. Stored readings never
// change, so entries only leave the cache through TTL or eviction.
// A size of zero disables the cache; smaller positive sizes are raised to
// MinCacheSizeMB.
func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Cache disabled")
		return &noopCache{}
	}

	sizeMB := conf.Cache.Size
	if sizeMB < MinCacheSizeMB {
		logger.Warnf(TypeApp, "Cache size %dMB too small for readings, using %dMB", sizeMB, MinCacheSizeMB)
		sizeMB = MinCacheSizeMB
	}
	ttl := max(conf.Cache.TTL, 0)

	logger.Infof(TypeApp, "Cache initialized: %dMB, TTL=%ds", sizeMB, ttl)

	return &CacheProvider{
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:   ttl,
	}
}

// keyBytes views the key without copying; freecache never writes to it.
func keyBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(keyBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores value under key. Entries over 1/1024 of the cache size are
// refused with freecache.ErrLargeEntry.
func (c *CacheProvider) Set(key string, value []byte) error {
	if err := c.cache.Set(keyBytes(key), value, c.ttl); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool)  { return nil, false }
func (n *noopCache) Set(_ string, _ []byte) error { return nil }
