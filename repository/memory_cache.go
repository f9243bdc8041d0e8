package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

const memoryCacheCleanupInterval = 10 * time.Minute

// MemoryCache is the in-process cache used when no Redis address is configured.
type MemoryCache struct {
	store *cache.Cache
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		store: cache.New(cache.NoExpiration, memoryCacheCleanupInterval),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	val, ok := m.store.Get(key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	m.store.Set(key, value, ttl)
	return nil
}
