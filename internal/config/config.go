package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alexanderramin/hafazan/internal/quran"
)

// EnvPrefix is prepended to every environment override, e.g. HAFAZAN_DB_PATH.
const EnvPrefix = "HAFAZAN"

// Config is the process configuration. Learner settings live in the store.
type Config struct {
	DBPath   string
	Content  quran.Config
	LogLevel string
	LogCalls bool
	NoColor  bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
// home is the directory that holds the default database.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:   filepath.Join(home, ".hafazan", "hafazan.db"),
		Content:  quran.DefaultConfig(),
		LogLevel: "warn",
	}
}

// Load reads .env, then ~/.hafazan/hafazan.yaml if present, then HAFAZAN_*
// environment variables. Later sources win.
func Load() (Config, error) {
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolving home directory: %w", err)
	}
	return load(viper.New(), home)
}

func load(v *viper.Viper, home string) (Config, error) {
	def := DefaultConfig(home)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("content.endpoint", def.Content.Endpoint)
	v.SetDefault("content.translation", def.Content.TranslationEdition)
	v.SetDefault("content.timeout_ms", def.Content.TimeoutMs)
	v.SetDefault("content.max_retries", def.Content.MaxRetries)
	v.SetDefault("log.level", def.LogLevel)
	v.SetDefault("log.calls", def.LogCalls)
	v.SetDefault("no_color", def.NoColor)

	v.SetConfigName("hafazan")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(home, ".hafazan"))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Config{
		DBPath: v.GetString("db_path"),
		Content: quran.Config{
			Endpoint:           strings.TrimRight(v.GetString("content.endpoint"), "/"),
			TranslationEdition: v.GetString("content.translation"),
			TimeoutMs:          v.GetInt("content.timeout_ms"),
			MaxRetries:         v.GetInt("content.max_retries"),
		},
		LogLevel: strings.ToLower(v.GetString("log.level")),
		LogCalls: v.GetBool("log.calls"),
		NoColor:  v.GetBool("no_color"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path cannot be empty")
	}
	if c.Content.Endpoint == "" {
		return fmt.Errorf("content.endpoint cannot be empty")
	}
	if c.Content.TimeoutMs <= 0 {
		return fmt.Errorf("content.timeout_ms must be positive (got %d)", c.Content.TimeoutMs)
	}
	if c.Content.MaxRetries < 0 {
		return fmt.Errorf("content.max_retries must not be negative (got %d)", c.Content.MaxRetries)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q (use debug, info, warn or error)", c.LogLevel)
	}
}
