// Package config loads the service settings from the environment, reading a
// local .env file first when one is present.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/comitanigiacomo/activity-graph/internal/adapters/codeberg"
	"github.com/comitanigiacomo/activity-graph/internal/core/domain"
)

type Config struct {
	Port string

	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	CacheTTL time.Duration
	Location *time.Location

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	RateLimitPerMinute int
	WarmUsers          []string
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// Load reads .env (if any) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		UpstreamBaseURL: getEnv("CODEBERG_BASE_URL", codeberg.DefaultBaseURL),
		RedisHost:       os.Getenv("REDIS_HOST"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		WarmUsers:       splitList(os.Getenv("WARM_USERS")),
	}

	var err error
	if cfg.UpstreamTimeout, err = getDuration("UPSTREAM_TIMEOUT", codeberg.DefaultTimeout); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getDuration("HEATMAP_CACHE_TTL", domain.DefaultCacheTTL); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = getInt("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}

	tz := getEnv("HEATMAP_TIMEZONE", "UTC")
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("config: invalid HEATMAP_TIMEZONE %q: %w", tz, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
