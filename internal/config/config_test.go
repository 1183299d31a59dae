package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := load(viper.New(), home)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".hafazan", "hafazan.db"), cfg.DBPath)
	assert.Equal(t, "https://api.alquran.cloud/v1", cfg.Content.Endpoint)
	assert.Equal(t, "en.asad", cfg.Content.TranslationEdition)
	assert.Equal(t, 10000, cfg.Content.TimeoutMs)
	assert.Equal(t, 1, cfg.Content.MaxRetries)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.LogCalls)
	assert.False(t, cfg.NoColor)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HAFAZAN_DB_PATH", "/tmp/custom.db")
	t.Setenv("HAFAZAN_CONTENT_ENDPOINT", "http://localhost:9000/v1/")
	t.Setenv("HAFAZAN_CONTENT_TIMEOUT_MS", "2500")
	t.Setenv("HAFAZAN_LOG_LEVEL", "DEBUG")
	t.Setenv("HAFAZAN_LOG_CALLS", "true")
	t.Setenv("HAFAZAN_NO_COLOR", "1")

	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, "http://localhost:9000/v1", cfg.Content.Endpoint)
	assert.Equal(t, 2500, cfg.Content.TimeoutMs)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogCalls)
	assert.True(t, cfg.NoColor)
}

func TestLoad_ConfigFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".hafazan")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	yaml := "db_path: /data/hafazan.db\ncontent:\n  translation: en.sahih\n  max_retries: 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hafazan.yaml"), []byte(yaml), 0o644))

	cfg, err := load(viper.New(), home)
	require.NoError(t, err)

	assert.Equal(t, "/data/hafazan.db", cfg.DBPath)
	assert.Equal(t, "en.sahih", cfg.Content.TranslationEdition)
	assert.Equal(t, 3, cfg.Content.MaxRetries)
	assert.Equal(t, "https://api.alquran.cloud/v1", cfg.Content.Endpoint)
}

func TestLoad_EnvBeatsConfigFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".hafazan")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hafazan.yaml"), []byte("db_path: /from/file.db\n"), 0o644))
	t.Setenv("HAFAZAN_DB_PATH", "/from/env.db")

	cfg, err := load(viper.New(), home)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DBPath)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".hafazan")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hafazan.yaml"), []byte("db_path: [unterminated\n"), 0o644))

	_, err := load(viper.New(), home)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("HAFAZAN_LOG_LEVEL", "chatty")

	_, err := load(viper.New(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig("/home/test")
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty db path", func(c *Config) { c.DBPath = "" }, "db_path cannot be empty"},
		{"empty endpoint", func(c *Config) { c.Content.Endpoint = "" }, "content.endpoint cannot be empty"},
		{"zero timeout", func(c *Config) { c.Content.TimeoutMs = 0 }, "content.timeout_ms must be positive"},
		{"negative retries", func(c *Config) { c.Content.MaxRetries = -1 }, "content.max_retries must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"":      slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := Config{LogLevel: in}.SlogLevel()
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
