package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a temp config file and returns its path
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  base_url: "https://alerts.example.com"

database:
  dsn: "file:test.db"

ingest:
  interval: 15m
  max_concurrent: 3
  sources:
    - name: vendor-blog
      url: https://vendor.example.com/rss
      kind: feed
    - name: incident-tracker
      url: https://tracker.example.com/incidents
      kind: scrape
      category_hint: defi-security

notify:
  smtp:
    host: smtp.example.com
    from: alerts@example.com
  admin_email: admin@example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, "https://alerts.example.com", cfg.Server.BaseURL)
	assert.Equal(t, 15*time.Minute, cfg.Ingest.Interval)
	assert.Equal(t, 3, cfg.Ingest.MaxConcurrent)

	require.Len(t, cfg.Ingest.Sources, 2)
	assert.Equal(t, "vendor-blog", cfg.Ingest.Sources[0].Name)
	assert.Equal(t, "scrape", cfg.Ingest.Sources[1].Kind)
	assert.Equal(t, "defi-security", cfg.Ingest.Sources[1].CategoryHint)

	assert.Equal(t, "smtp.example.com", cfg.Notify.SMTP.Host)
	assert.Equal(t, "admin@example.com", cfg.Notify.AdminEmail)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  listen: \":8080\"\n"))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
	assert.Equal(t, 30*time.Minute, cfg.Ingest.Interval)
	assert.Equal(t, 7*24*time.Hour, cfg.Ingest.Lookback)
	assert.Equal(t, 30*24*time.Hour, cfg.Ingest.BackfillWindow)
	assert.Equal(t, 10, cfg.Ingest.MaxTags)
	assert.Equal(t, 5*time.Minute, cfg.Extract.Interval)
	assert.Equal(t, 5, cfg.Extract.MaxConcurrent)
	assert.Equal(t, 10, cfg.Extract.BatchSize)
	assert.Equal(t, 10*time.Minute, cfg.Enrich.Interval)
	assert.Equal(t, 5, cfg.Enrich.BatchSize)
	assert.Equal(t, 587, cfg.Notify.SMTP.Port)
	assert.Equal(t, time.Hour, cfg.Notify.DigestInterval)
	assert.Equal(t, 15*time.Minute, cfg.Notify.CriticalInterval)
	assert.Equal(t, 3*time.Hour, cfg.Notify.CriticalLookback)
	assert.Equal(t, 48*time.Hour, cfg.Notify.TokenTTL)
	assert.Equal(t, int64(5), cfg.RateLimit.Attempts)
	assert.Equal(t, time.Hour, cfg.RateLimit.Window)

	attempts, window := cfg.GetRateLimit()
	assert.Equal(t, int64(5), attempts)
	assert.Equal(t, time.Hour, window)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TW_SMTP_PASSWORD", "s3cret")
	path := writeConfig(t, `
notify:
  smtp:
    host: smtp.example.com
    from: alerts@example.com
    password: "${TW_SMTP_PASSWORD}"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Notify.SMTP.Password)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		errPart string
	}{
		{
			name:    "smtp host without from",
			yaml:    "notify:\n  smtp:\n    host: smtp.example.com\n",
			errPart: "smtp.from is required",
		},
		{
			name:    "enrich enabled without model",
			yaml:    "enrich:\n  enabled: true\n",
			errPart: "enrich.model is required",
		},
		{
			name:    "lookback too short",
			yaml:    "ingest:\n  lookback: 10m\n",
			errPart: "lookback must be at least 1 hour",
		},
		{
			name:    "critical lookback shorter than interval",
			yaml:    "notify:\n  critical_interval: 30m\n  critical_lookback: 10m\n",
			errPart: "critical_lookback must cover",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [not a map"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
