package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_BACKEND_KEY", "secret-key")

	path := writeFile(t, "config.yaml", `
backend:
  base_url: "https://backend.example.com"
  api_key: "${TEST_BACKEND_KEY}"
  organization_id: "org-1"
  cache_ttl_seconds: 300
server:
  port: 9090
booking:
  fetch_months: 3
  rebuild_interval_minutes: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://backend.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, "secret-key", cfg.Backend.APIKey, "env placeholders expand")
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Booking.FetchMonths)
	assert.Equal(t, 5*time.Minute, cfg.RebuildInterval())
	assert.Equal(t, 300*time.Second, cfg.CacheTTL())
}

func TestLoadDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
backend:
  base_url: "https://backend.example.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Booking.FetchMonths)
	assert.Equal(t, 6, cfg.Booking.MaxCandidates)
	assert.Equal(t, "Asia/Tokyo", cfg.Booking.Timezone)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "configs/slots.yaml", cfg.SlotsConfigPath)
	assert.Equal(t, 15*time.Minute, cfg.RebuildInterval())
	assert.Equal(t, time.Duration(0), cfg.CacheTTL())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
