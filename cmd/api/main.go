package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/activity-graph/internal/adapters/cache"
	"github.com/comitanigiacomo/activity-graph/internal/adapters/codeberg"
	adapterHTTP "github.com/comitanigiacomo/activity-graph/internal/adapters/handler/http"
	"github.com/comitanigiacomo/activity-graph/internal/config"
	"github.com/comitanigiacomo/activity-graph/internal/core/domain"
	"github.com/comitanigiacomo/activity-graph/internal/core/services"
	"github.com/comitanigiacomo/activity-graph/internal/core/workers"
)

type app struct {
	router *gin.Engine
	warmup *workers.WarmupWorker
	graph  *services.GraphService
	cache  domain.HeatmapCache
	redis  *redis.Client
}

func (a *app) Close() {
	if a.redis != nil {
		a.redis.Close()
	}
}

func newApp(cfg *config.Config, startTime time.Time) *app {
	a := &app{}

	var heatmapCache domain.HeatmapCache
	if cfg.RedisEnabled() {
		rdb, err := cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Printf("[CACHE] Redis unavailable, falling back to memory: %v", err)
		} else {
			log.Println("[CACHE] Redis connected successfully.")
			a.redis = rdb
			heatmapCache = cache.NewRedisHeatmapCache(rdb, 2*cfg.CacheTTL)
		}
	}
	if heatmapCache == nil {
		heatmapCache = cache.NewMemoryHeatmapCache()
	}

	a.cache = heatmapCache

	client := codeberg.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	heatmapService := services.NewHeatmapService(client, heatmapCache, cfg.CacheTTL)
	graphService := services.NewGraphService(heatmapService, cfg.Location)
	a.graph = graphService

	a.warmup = workers.NewWarmupWorker(heatmapService)
	a.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		GraphHandler:       adapterHTTP.NewGraphHandler(graphService),
		Redis:              a.redis,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		StartTime:          startTime,
	})

	return a
}

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: invalid configuration: %v", err)
	}

	a := newApp(cfg, startTime)
	defer a.Close()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	a.warmup.Start(workerCtx)
	if n := a.warmup.EnqueueAll(cfg.WarmUsers); n > 0 {
		log.Printf("[WARMUP] Queued %d users", n)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Activity graph running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
