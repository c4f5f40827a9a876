package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "TRIAGE_THINKING_DELAY_MS", "SESSION_IDLE_TTL_MINUTES",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_LEVEL", "LOG_FORMAT",
		"LOG_FILE", "RENDER_STYLE", "RENDER_WIDTH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, time.Second, cfg.Triage.ThinkingDelay)
	require.Equal(t, 30*time.Minute, cfg.Triage.SessionIdleTTL)
	require.Equal(t, RateLimitConfig{RPS: 5, Burst: 10}, cfg.RateLimit)
	require.True(t, cfg.RateLimit.Enabled())
	require.Equal(t, LogConfig{Level: "info", Format: "text"}, cfg.Log)
	require.Equal(t, RenderConfig{Style: "dark", Width: 80}, cfg.Render)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "127.0.0.1:9000")
	t.Setenv("TRIAGE_THINKING_DELAY_MS", "0")
	t.Setenv("SESSION_IDLE_TTL_MINUTES", "5")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("RENDER_WIDTH", "120")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	require.Zero(t, cfg.Triage.ThinkingDelay)
	require.Equal(t, 5*time.Minute, cfg.Triage.SessionIdleTTL)
	require.False(t, cfg.RateLimit.Enabled())
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, 120, cfg.Render.Width)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":                     "80 80",
		"TRIAGE_THINKING_DELAY_MS": "-1",
		"SESSION_IDLE_TTL_MINUTES": "soon",
		"RATE_LIMIT_BURST":         "many",
		"RENDER_WIDTH":             "0",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadFileOverlay(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "triage.toml")
	content := `
[triage]
thinking_delay_ms = 250

[render]
style = "light"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, LoadFile(cfg, path))

	require.Equal(t, 250*time.Millisecond, cfg.Triage.ThinkingDelay)
	require.Equal(t, "light", cfg.Render.Style)
	require.Equal(t, 80, cfg.Render.Width)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileErrors(t *testing.T) {
	cfg := &Config{}

	require.Error(t, LoadFile(cfg, filepath.Join(t.TempDir(), "missing.toml")))

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render]\nwidth = -3\n"), 0o600))
	err := LoadFile(cfg, path)
	require.ErrorContains(t, err, "render.width")
}
