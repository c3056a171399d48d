package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_RedisConfig(t *testing.T) {
	os.Setenv("REDIS_HOST", "cache.internal")
	os.Setenv("REDIS_PORT", "6380")
	defer func() {
		os.Unsetenv("REDIS_HOST")
		os.Unsetenv("REDIS_PORT")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "cache.internal", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.RedisAddr())
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("SEARCH_PAGE_SIZE")
	os.Unsetenv("RECENT_SEARCH_KEY")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 12, cfg.Search.DefaultPageSize)
	assert.Equal(t, 10, cfg.Search.RecentSearchSize)
	assert.Equal(t, "creamery:recent-searches", cfg.Search.RecentSearchKey)
	assert.Equal(t, "static", cfg.Geolocation.Provider)
	assert.False(t, cfg.OTEL.Enabled)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	os.Setenv("SERVER_PORT", "not-a-port")
	defer os.Unsetenv("SERVER_PORT")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
}
