package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "https://fantasy.premierleague.com/api", cfg.FPLBaseURL)
	assert.Equal(t, 20*time.Second, cfg.FPLTimeout)
	assert.Equal(t, 2.0, cfg.FPLRateLimit)
	assert.Equal(t, uint32(5), cfg.BreakerMaxFails)
	assert.Equal(t, "", cfg.RedisURL, "caching is off unless a redis URL is set")
	assert.Equal(t, 30*time.Minute, cfg.SnapshotCacheTTL)
	assert.Equal(t, "fpl_draft_board.html", cfg.OutputPath)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("FPL_BASE_URL", "http://localhost:8080/api")
	t.Setenv("FPL_TIMEOUT", "5s")
	t.Setenv("REPORT_TITLE", "Preseason Board")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "http://localhost:8080/api", cfg.FPLBaseURL)
	assert.Equal(t, 5*time.Second, cfg.FPLTimeout)
	assert.Equal(t, "Preseason Board", cfg.ReportTitle)
	assert.True(t, cfg.IsProduction())
}
