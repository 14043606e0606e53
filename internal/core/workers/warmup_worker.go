package workers

import (
	"context"
	"log"
	"strings"

	"github.com/comitanigiacomo/activity-graph/internal/core/domain"
)

const warmupQueueSize = 100

type WarmupJob struct {
	Username string
}

// WarmupWorker pre-populates the heatmap cache in the background.
type WarmupWorker struct {
	fetcher domain.HeatmapSource
	jobs    chan WarmupJob
}

func NewWarmupWorker(fetcher domain.HeatmapSource) *WarmupWorker {
	return &WarmupWorker{
		fetcher: fetcher,
		jobs:    make(chan WarmupJob, warmupQueueSize),
	}
}

func (w *WarmupWorker) Start(ctx context.Context) {
	go func() {
		log.Println("[WARMUP] Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("[WARMUP] Worker shutting down...")
				return
			}
		}
	}()
}

// Enqueue never blocks; jobs are dropped when the queue is full.
func (w *WarmupWorker) Enqueue(username string) bool {
	select {
	case w.jobs <- WarmupJob{Username: username}:
		return true
	default:
		log.Printf("[WARMUP] Queue full! Dropping job for %s", username)
		return false
	}
}

// EnqueueAll queues every distinct valid username and returns how many were accepted.
func (w *WarmupWorker) EnqueueAll(usernames []string) int {
	queued := 0
	for _, name := range uniqueUsernames(usernames) {
		if w.Enqueue(name) {
			queued++
		}
	}
	return queued
}

func (w *WarmupWorker) processJob(ctx context.Context, job WarmupJob) {
	records, err := w.fetcher.FetchHeatmap(ctx, job.Username)
	if err != nil {
		log.Printf("[WARMUP] Failed to warm %s: %v", job.Username, err)
		return
	}
	log.Printf("[WARMUP] Cached %d records for %s", len(records), job.Username)
}

func uniqueUsernames(names []string) []string {
	seen := make(map[string]bool)
	var out []string

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if domain.ValidateUsername(name) != nil {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}
