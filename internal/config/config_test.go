package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "turing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  file: /tmp/turing.log
store:
  backend: redis
  redis:
    addr: redis:6379
    db: 2
    ttl: 1h
server:
  port: 9090
display:
  window: 8
`)
	cfg, err := LoadWithEnv(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/turing.log", cfg.Log.File)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	assert.Equal(t, time.Hour, cfg.Store.Redis.TTL)
	assert.Equal(t, "turing:run:", cfg.Store.Redis.Prefix, "unset keys keep defaults")
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 8, cfg.Display.Window)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	env := []string{
		"TURING_SERVER_PORT=7070",
		"TURING_STORE_REDIS_DB=5",
		"TURING_STORE_REDIS_TTL=30m",
		"TURING_DISPLAY_WINDOW=3",
		"HOME=/root",
	}

	cfg, err := LoadWithEnv(path, env)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Store.Redis.DB)
	assert.Equal(t, 30*time.Minute, cfg.Store.Redis.TTL)
	assert.Equal(t, 3, cfg.Display.Window)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  []string
	}{
		{name: "unknown backend", body: "store:\n  backend: etcd\n"},
		{name: "bad port", env: []string{"TURING_SERVER_PORT=70000"}},
		{name: "negative window", body: "display:\n  window: -1\n"},
		{name: "unknown key", body: "colour: blue\n"},
		{name: "not a number", env: []string{"TURING_SERVER_PORT=eighty"}},
		{name: "bad yaml", body: "log: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.body != "" {
				path = writeConfig(t, tt.body)
			}
			_, err := LoadWithEnv(path, tt.env)
			assert.Error(t, err)
		})
	}
}

func TestLoad_IgnoresForeignEnv(t *testing.T) {
	env := []string{
		"TURING_MAX_INPUT_SIZE=8192",
		"TURING_FOO=bar",
		"TURING_DISPLAY_WINDOW=4",
	}

	cfg, err := LoadWithEnv("", env)
	require.NoError(t, err)

	want := Default()
	want.Display.Window = 4
	assert.Equal(t, want, cfg)
}
