package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ABOOK_CONFIG", filepath.Join(t.TempDir(), "absent.json"))
	t.Setenv("ABOOK_DATA_DIR", "")
	t.Setenv("ABOOK_SESSION_TTL", "")

	cfg := Load()
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, 12*time.Hour, cfg.SessionTTL)
	require.NotEmpty(t, cfg.KeyFile)
	require.NotEmpty(t, cfg.TokenFile)
}

func TestLoad_JSONOverlayAndEnvWins(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"data_dir":"/from/json","session_ttl":"1h"}`), 0o600))

	t.Setenv("ABOOK_CONFIG", cfgPath)
	t.Setenv("ABOOK_DATA_DIR", "/from/env")
	t.Setenv("ABOOK_SESSION_TTL", "")

	cfg := Load()
	require.Equal(t, "/from/env", cfg.DataDir, "env overlays JSON")
	require.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestLoad_MalformedJSONIgnored(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{not json`), 0o600))

	t.Setenv("ABOOK_CONFIG", cfgPath)
	t.Setenv("ABOOK_DATA_DIR", "")
	t.Setenv("ABOOK_SESSION_TTL", "bogus")

	cfg := Load()
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, 12*time.Hour, cfg.SessionTTL)
}

func TestDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	require.Equal(t, filepath.Join("/tmp/xdg", "abook"), Dir())
}
