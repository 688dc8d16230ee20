package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 16, cfg.Server.BodyLimitMB)
	assert.Equal(t, "networth", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "https://api.hypixel.net", cfg.Feed.BaseURL)
	assert.Equal(t, 15*time.Minute, cfg.Feed.BazaarMaxAge)
	assert.Equal(t, time.Hour, cfg.Feed.AuctionMaxAge)
	assert.Equal(t, 8, cfg.Feed.AuctionPageConcurrency)
	assert.Equal(t, "dir", cfg.Reference.Source)
	assert.Equal(t, "reference/", cfg.Reference.Prefix)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("FEED_API_KEY", "from-env")
	t.Setenv("FEED_BAZAAR_MAX_AGE", "5m")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Feed.APIKey)
	assert.Equal(t, 5*time.Minute, cfg.Feed.BazaarMaxAge)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REFERENCE_SOURCE=storage\nLOG_FORMAT=console\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("REFERENCE_SOURCE")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "storage", cfg.Reference.Source)
	assert.Equal(t, "console", cfg.Log.Format)
}
