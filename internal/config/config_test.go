package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8585", cfg.Addr())
}

func TestLoad_File(t *testing.T) {
	path := writeYAML(t, `
log:
  level: debug
  format: console
preview:
  port: 9000
display:
  timezone: Asia/Kolkata
catalog:
  dir: /etc/catalogview/catalog
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9000, cfg.Preview.Port)
	assert.Equal(t, 10*time.Second, cfg.Preview.ShutdownTimeout)
	assert.Equal(t, "/etc/catalogview/catalog", cfg.Catalog.Dir)
	assert.Equal(t, "Asia/Kolkata", cfg.Display.Timezone)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeYAML(t, "log:\n  level: debug\n")
	t.Setenv("CATALOGVIEW_LOG_LEVEL", "error")
	t.Setenv("CATALOGVIEW_FIXTURES_PATH", "/tmp/fixtures.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "/tmp/fixtures.json", cfg.Fixtures.Path)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeYAML(t, "preview:\n  port: 70000\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeYAML(t, "display:\n  timezone: Mars/Olympus\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLocation(t *testing.T) {
	cfg := Default()
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestDump_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "warn"
	cfg.Preview.ShutdownTimeout = 3 * time.Second

	var buf bytes.Buffer
	require.NoError(t, cfg.Dump(&buf))
	assert.Contains(t, buf.String(), "shutdown_timeout: 3s")

	got, err := Load(writeYAML(t, buf.String()))
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
