package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "CODEBERG_BASE_URL", "UPSTREAM_TIMEOUT", "HEATMAP_CACHE_TTL", "HEATMAP_TIMEZONE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "RATE_LIMIT_PER_MINUTE", "WARM_USERS",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://codeberg.org", cfg.UpstreamBaseURL)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.False(t, cfg.RedisEnabled())
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, 100, cfg.RateLimitPerMinute)
	assert.Empty(t, cfg.WarmUsers)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CODEBERG_BASE_URL", "https://forge.example")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("HEATMAP_CACHE_TTL", "15m")
	t.Setenv("HEATMAP_TIMEZONE", "Europe/Rome")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")
	t.Setenv("WARM_USERS", " alice, bob ,,")

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://forge.example", cfg.UpstreamBaseURL)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "Europe/Rome", cfg.Location.String())
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.Equal(t, []string{"alice", "bob"}, cfg.WarmUsers)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"UPSTREAM_TIMEOUT", "soon"},
		{"HEATMAP_CACHE_TTL", "1 hour"},
		{"HEATMAP_TIMEZONE", "Mars/Olympus"},
		{"REDIS_DB", "one"},
		{"RATE_LIMIT_PER_MINUTE", "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()

			assert.ErrorContains(t, err, tt.key)
		})
	}
}
