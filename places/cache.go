package places

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache keeps encoded Overpass answers for a short while; Overpass rate
// limits aggressively.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type MemoryCache struct {
	c *cache.Cache
}

func NewMemoryCache(cleanup time.Duration) *MemoryCache {
	return &MemoryCache{c: cache.New(cache.NoExpiration, cleanup)}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.c.Set(key, value, ttl)
}
