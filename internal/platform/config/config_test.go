package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.Limits.MaxBodyBytes)
	assert.Equal(t, "District", cfg.Dataset.RegionColumn)
	assert.Equal(t, "mixed", cfg.Render.ImageEngine)
	assert.Equal(t, []string{"*"}, cfg.Security.CORSOrigins)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
server:
  addr: ":9090"
  shutdown_timeout: 3s
dataset:
  path: /data/cases.xlsx
  sheet: Cases
render:
  default_format: png
  image_engine: gonum
security:
  cors_origins:
    - https://dash.example.com
    - https://ops.example.com
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, "/data/cases.xlsx", cfg.Dataset.Path)
	assert.Equal(t, "Cases", cfg.Dataset.Sheet)
	assert.Equal(t, "png", cfg.Render.DefaultFormat)
	assert.Equal(t, "gonum", cfg.Render.ImageEngine)
	assert.Equal(t, []string{"https://dash.example.com", "https://ops.example.com"}, cfg.Security.CORSOrigins)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "server:\n  addr: \":9090\"\n")
	t.Setenv("CASEBOARD_SERVER_ADDR", ":7070")
	t.Setenv("CASEBOARD_SERVER_WRITE_TIMEOUT", "45s")
	t.Setenv("CASEBOARD_DATASET_REGION_COLUMN", "Name")
	t.Setenv("CASEBOARD_LIMITS_MAX_SELECTION", "25")
	t.Setenv("CASEBOARD_SECURITY_CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("CASEBOARD_SECURITY_RATE_LIMIT_DISABLED", "true")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 45*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "Name", cfg.Dataset.RegionColumn)
	assert.Equal(t, 25, cfg.Limits.MaxSelection)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Security.CORSOrigins)
	assert.True(t, cfg.Security.RateLimitDisabled)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown format", env: map[string]string{"CASEBOARD_RENDER_DEFAULT_FORMAT": "gif"}},
		{name: "unknown engine", env: map[string]string{"CASEBOARD_RENDER_IMAGE_ENGINE": "plotly"}},
		{name: "unknown log level", env: map[string]string{"CASEBOARD_LOGGING_LEVEL": "verbose"}},
		{name: "zero selection limit", env: map[string]string{"CASEBOARD_LIMITS_MAX_SELECTION": "0"}},
		{name: "zero rate limit", env: map[string]string{"CASEBOARD_SECURITY_RATE_LIMIT_REQUESTS": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFrom("")
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadUsesPathEnvVar(t *testing.T) {
	t.Setenv(PathEnvVar, writeFile(t, "logging:\n  level: debug\n"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.addr", envKey("CASEBOARD_SERVER_ADDR"))
	assert.Equal(t, "server.read_header_timeout", envKey("CASEBOARD_SERVER_READ_HEADER_TIMEOUT"))
	assert.Equal(t, "config", envKey("CASEBOARD_CONFIG"))
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join("..", "..", "..", "config.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
