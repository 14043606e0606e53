package services

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/comitanigiacomo/activity-graph/internal/core/domain"
)

var _ domain.HeatmapSource = (*HeatmapService)(nil)

// HeatmapService fetches raw heatmap records through a HeatmapCache. Concurrent
// misses for the same username share a single upstream call.
type HeatmapService struct {
	source domain.HeatmapSource
	cache  domain.HeatmapCache
	ttl    time.Duration
	now    func() time.Time
	group  singleflight.Group
}

func NewHeatmapService(source domain.HeatmapSource, cache domain.HeatmapCache, ttl time.Duration) *HeatmapService {
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}
	return &HeatmapService{
		source: source,
		cache:  cache,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for freshness checks.
func (s *HeatmapService) WithClock(now func() time.Time) *HeatmapService {
	s.now = now
	return s
}

func cacheKey(username string) string {
	return strings.ToLower(username)
}

func (s *HeatmapService) FetchHeatmap(ctx context.Context, username string) ([]domain.ActivityRecord, error) {
	key := cacheKey(username)

	entry, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[CACHE] Read error for %s: %v", key, err)
	} else if ok && entry.Fresh(s.now(), s.ttl) {
		return entry.Data, nil
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		// The call is shared, so one caller hanging up must not cancel it.
		sharedCtx := context.WithoutCancel(ctx)

		data, err := s.source.FetchHeatmap(sharedCtx, username)
		if err != nil {
			return nil, err
		}

		if err := s.cache.Put(sharedCtx, key, domain.NewCacheEntry(data, s.now())); err != nil {
			log.Printf("[CACHE] Write error for %s: %v", key, err)
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Printf("[UPSTREAM] Coalesced heatmap fetch for %s", key)
	}

	return v.([]domain.ActivityRecord), nil
}
