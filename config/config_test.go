package config_test

import (
	"testing"
	"time"

	"cvcraft-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("AUTOSAVE_IDLE_MS", "")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "sixty")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.AutosaveIdle, "unparsable value keeps the default")
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("AUTOSAVE_IDLE_MS", "500")
	t.Setenv("WORKSPACE_IDLE_TTL", "90s")
	t.Setenv("SESSION_TTL", "3600")
	t.Setenv("FRONTEND_URL", "https://cv.example.com/")
	t.Setenv("LOCAL_STORE", "Redis")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.AutosaveIdle)
	assert.Equal(t, 90*time.Second, cfg.WorkspaceIdleTTL)
	assert.Equal(t, time.Hour, cfg.SessionTTL, "plain numbers are seconds")
	assert.Equal(t, "https://cv.example.com", cfg.FrontendURL)
	assert.Equal(t, "redis", cfg.LocalStore)
	assert.True(t, cfg.CookieSecure)
}
