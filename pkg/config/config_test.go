package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/runway/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults()
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Empty(t, cfg.Logging.Sentry.DSN)
	require.Equal(t, "file", cfg.Sessions.Backend)
	require.Equal(t, "./sessions", cfg.Sessions.Dir)
	require.Equal(t, "json", cfg.Sessions.Format)
	require.Equal(t, "__sid", cfg.Sessions.CookieName)
	require.Equal(t, 86400, cfg.Sessions.MaxAge)
	require.Empty(t, cfg.Cookies.Secret)
	require.False(t, cfg.Cookies.Secure)
}

func TestLoad(t *testing.T) {
	t.Run("yaml file overrides defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
logging:
  level: debug
  format: text
  sentry:
    dsn: https://key@sentry.example.com/1
    environment: staging
sessions:
  backend: redis
  redis_url: redis://localhost:6379/0
  cookie_name: visit
  max_age: 3600
  prune_schedule: "0 3 * * *"
cookies:
  secret: super-secret
  secure: true
`)

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, "debug", cfg.Logging.Level)
		require.Equal(t, "text", cfg.Logging.Format)
		require.Equal(t, "https://key@sentry.example.com/1", cfg.Logging.Sentry.DSN)
		require.Equal(t, "staging", cfg.Logging.Sentry.Environment)
		require.Equal(t, "redis", cfg.Sessions.Backend)
		require.Equal(t, "redis://localhost:6379/0", cfg.Sessions.RedisURL)
		require.Equal(t, "visit", cfg.Sessions.CookieName)
		require.Equal(t, 3600, cfg.Sessions.MaxAge)
		require.Equal(t, "0 3 * * *", cfg.Sessions.PruneSchedule)
		require.Equal(t, "super-secret", cfg.Cookies.Secret)
		require.True(t, cfg.Cookies.Secure)

		// Untouched fields keep their defaults.
		require.Equal(t, "json", cfg.Sessions.Format)
	})

	t.Run("missing explicit file errors", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(writeConfig(t, "logging: ["))
		require.Error(t, err)
		require.ErrorContains(t, err, "config file")
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  level: warn
sessions:
  dir: /var/lib/app/sessions
`)
		t.Setenv("RUNWAY_LOG_LEVEL", "error")
		t.Setenv("RUNWAY_SESSION_DIR", "/tmp/sessions")
		t.Setenv("RUNWAY_SESSION_MAX_AGE", "600")
		t.Setenv("RUNWAY_COOKIE_SECURE", "true")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, "error", cfg.Logging.Level)
		require.Equal(t, "/tmp/sessions", cfg.Sessions.Dir)
		require.Equal(t, 600, cfg.Sessions.MaxAge)
		require.True(t, cfg.Cookies.Secure)
	})

	t.Run("malformed numeric override ignored", func(t *testing.T) {
		t.Setenv("RUNWAY_SESSION_MAX_AGE", "soon")

		cfg, err := config.Load(writeConfig(t, "sessions:\n  max_age: 1200\n"))
		require.NoError(t, err)
		require.Equal(t, 1200, cfg.Sessions.MaxAge)
	})

	t.Run("discovery through RUNWAY_CONFIG", func(t *testing.T) {
		path := writeConfig(t, "logging:\n  level: debug\n")
		t.Setenv("RUNWAY_CONFIG", path)

		cfg, err := config.Load("")
		require.NoError(t, err)
		require.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("no file anywhere uses defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := config.Load("")
		require.NoError(t, err)
		require.Equal(t, config.Defaults(), *cfg)
	})

	t.Run("validation failure surfaces", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(writeConfig(t, "sessions:\n  backend: memcache\n"))
		require.Error(t, err)
		require.ErrorContains(t, err, "sessions.backend")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() config.Config { return config.Defaults() }

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		require.NoError(t, cfg.Validate())
	})

	t.Run("unknown log level", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Logging.Level = "verbose"
		require.ErrorContains(t, cfg.Validate(), "logging.level")
	})

	t.Run("unknown log format", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Logging.Format = "xml"
		require.ErrorContains(t, cfg.Validate(), "logging.format")
	})

	t.Run("redis backend requires url", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Sessions.Backend = "redis"
		require.ErrorContains(t, cfg.Validate(), "sessions.redis_url")
	})

	t.Run("postgres backend requires url", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Sessions.Backend = "postgres"
		require.ErrorContains(t, cfg.Validate(), "sessions.postgres_url")
	})

	t.Run("file backend requires dir", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Sessions.Dir = ""
		require.ErrorContains(t, cfg.Validate(), "sessions.dir")
	})

	t.Run("unknown session format", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Sessions.Format = "toml"
		require.ErrorContains(t, cfg.Validate(), "sessions.format")
	})

	t.Run("non-positive max age", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Sessions.MaxAge = 0
		require.ErrorContains(t, cfg.Validate(), "sessions.max_age")
	})

	t.Run("all problems reported at once", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Logging.Level = "verbose"
		cfg.Sessions.CookieName = ""
		err := cfg.Validate()
		require.ErrorContains(t, err, "logging.level")
		require.ErrorContains(t, err, "sessions.cookie_name")
	})
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	} {
		require.Equal(t, want, config.Logging{Level: name}.SlogLevel(), "level %q", name)
	}
}
