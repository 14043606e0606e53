package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/activity-graph/internal/adapters/handler/http/middleware"
)

type RouterDependencies struct {
	GraphHandler       *GraphHandler
	Redis              *redis.Client
	RateLimitPerMinute int
	StartTime          time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept-Encoding, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil && deps.RateLimitPerMinute > 0 {
		router.Use(middleware.RateLimiterWithReject(deps.Redis, deps.RateLimitPerMinute, 1*time.Minute, deps.GraphHandler.RejectRateLimited))
	}

	router.GET("/health", func(c *gin.Context) {
		cacheBackend := "memory"
		redisStatus := "disabled"
		statusCode := 200

		if deps.Redis != nil {
			cacheBackend = "redis"
			redisStatus = "connected"
			if deps.Redis.Ping(c.Request.Context()).Err() != nil {
				redisStatus = "unreachable"
				statusCode = 503
			}
		}

		c.JSON(statusCode, gin.H{
			"status": "ok",
			"cache":  cacheBackend,
			"redis":  redisStatus,
			"uptime": time.Since(deps.StartTime).String(),
		})
	})

	deps.GraphHandler.RegisterRoutes(&router.RouterGroup)

	return router
}
