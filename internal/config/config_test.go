package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/scout-interest/internal/config"
)

// clearEnv blanks every recognized variable so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "MCP_ENABLED", "SUPABASE_URL", "SUPABASE_KEY", "DATABASE_URL",
		"PROJECTS_TABLE", "PROJECTS_EMBED", "STORE_TIMEOUT", "DB_MAX_CONNS", "APP_ENV", "LOG_LEVEL", "APP_VERSION",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Server.MCPEnabled)
	assert.Equal(t, "projects", cfg.Store.Table)
	assert.Equal(t, time.Duration(0), cfg.Store.Timeout)
	assert.Zero(t, cfg.Store.MaxConns)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, config.DriverNone, cfg.StoreDriver())
}

func TestLoad_Hosted(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co/")
	t.Setenv("SUPABASE_KEY", "anon-key")
	t.Setenv("STORE_TIMEOUT", "5s")
	t.Setenv("PROJECTS_EMBED", "results")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://abc.supabase.co", cfg.Store.URL)
	assert.Equal(t, 5*time.Second, cfg.Store.Timeout)
	assert.Equal(t, "results", cfg.Store.Embed)
	assert.Equal(t, config.DriverHosted, cfg.StoreDriver())
}

func TestStoreDriver(t *testing.T) {
	tests := []struct {
		name  string
		store config.StoreConfig
		want  string
	}{
		{name: "nothing set", want: config.DriverNone},
		{name: "url without key", store: config.StoreConfig{URL: "https://x"}, want: config.DriverNone},
		{name: "key without url", store: config.StoreConfig{Key: "k"}, want: config.DriverNone},
		{name: "url and key", store: config.StoreConfig{URL: "https://x", Key: "k"}, want: config.DriverHosted},
		{
			name:  "database url wins",
			store: config.StoreConfig{URL: "https://x", Key: "k", DatabaseURL: "postgres://localhost/db"},
			want:  config.DriverPostgres,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{Store: tt.store}
			assert.Equal(t, tt.want, cfg.StoreDriver())
		})
	}
}

func TestLoad_PoolSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/scout")
	t.Setenv("DB_MAX_CONNS", "3")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, int32(3), cfg.Store.MaxConns)
	assert.Equal(t, config.DriverPostgres, cfg.StoreDriver())

	t.Setenv("DB_MAX_CONNS", "-1")
	_, err = config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_CONNS")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MCP_ENABLED", "maybe")
	t.Setenv("STORE_TIMEOUT", "soon")
	t.Setenv("DB_MAX_CONNS", "lots")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Server.MCPEnabled)
	assert.Zero(t, cfg.Store.MaxConns)
	assert.Equal(t, time.Duration(0), cfg.Store.Timeout)
}

func TestParseLevel(t *testing.T) {
	level, err := config.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = config.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
