package domain

import (
	"context"
	"time"
)

const DefaultCacheTTL = time.Hour

// CacheEntry is a heatmap snapshot as stored by a HeatmapCache. Ts is the fetch
// time in epoch milliseconds.
type CacheEntry struct {
	Data []ActivityRecord `json:"data"`
	Ts   int64            `json:"ts"`
}

func NewCacheEntry(data []ActivityRecord, now time.Time) CacheEntry {
	return CacheEntry{Data: data, Ts: now.UnixMilli()}
}

// Fresh reports whether the entry is younger than ttl at now.
func (e CacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.UnixMilli()-e.Ts < ttl.Milliseconds()
}

type HeatmapCache interface {
	// Get returns the entry stored under key. ok is false on a miss.
	Get(ctx context.Context, key string) (entry CacheEntry, ok bool, err error)

	// Put stores entry under key, replacing any previous entry.
	Put(ctx context.Context, key string, entry CacheEntry) error
}

// HeatmapSource is the remote API serving raw per-day activity.
type HeatmapSource interface {
	FetchHeatmap(ctx context.Context, username string) ([]ActivityRecord, error)
}
