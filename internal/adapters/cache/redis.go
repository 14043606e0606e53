package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/activity-graph/internal/core/domain"
)

func NewRedisClient(host, port, password string, dbIndex int) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%s", host, port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           dbIndex,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return rdb, nil
}

var _ domain.HeatmapCache = (*RedisHeatmapCache)(nil)

// RedisHeatmapCache shares heatmap entries between instances. Freshness is still
// decided from CacheEntry.Ts; retention only bounds how long Redis keeps a key
// (zero keeps it forever).
type RedisHeatmapCache struct {
	rdb       *redis.Client
	retention time.Duration
}

func NewRedisHeatmapCache(rdb *redis.Client, retention time.Duration) *RedisHeatmapCache {
	return &RedisHeatmapCache{
		rdb:       rdb,
		retention: retention,
	}
}

func (c *RedisHeatmapCache) cacheKey(key string) string {
	return fmt.Sprintf("heatmap:%s", key)
}

func (c *RedisHeatmapCache) Get(ctx context.Context, key string) (domain.CacheEntry, bool, error) {
	val, err := c.rdb.Get(ctx, c.cacheKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.CacheEntry{}, false, nil
	}
	if err != nil {
		return domain.CacheEntry{}, false, err
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(val, &entry); err != nil {
		log.Printf("[CACHE] Corrupted data for %s, cleaning up key", key)
		c.rdb.Del(ctx, c.cacheKey(key))
		return domain.CacheEntry{}, false, nil
	}

	return entry, true, nil
}

func (c *RedisHeatmapCache) Put(ctx context.Context, key string, entry domain.CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	return c.rdb.Set(ctx, c.cacheKey(key), data, c.retention).Err()
}
