package cache

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/activity-graph/internal/core/domain"
)

var _ domain.HeatmapCache = (*MemoryHeatmapCache)(nil)

// MemoryHeatmapCache keeps every entry for the life of the process. Entries
// are only replaced, never evicted.
type MemoryHeatmapCache struct {
	store map[string]domain.CacheEntry

	mu sync.RWMutex
}

func NewMemoryHeatmapCache() *MemoryHeatmapCache {
	return &MemoryHeatmapCache{
		store: make(map[string]domain.CacheEntry),
	}
}

func (c *MemoryHeatmapCache) Get(ctx context.Context, key string) (domain.CacheEntry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	return entry, ok, nil
}

func (c *MemoryHeatmapCache) Put(ctx context.Context, key string, entry domain.CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = entry
	return nil
}

func (c *MemoryHeatmapCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.store)
}
