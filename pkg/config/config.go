package config

import "log/slog"

// Config holds every setting the module reads from the outside world.
type Config struct {
	Logging  Logging  `yaml:"logging"`
	Sessions Sessions `yaml:"sessions"`
	Cookies  Cookies  `yaml:"cookies"`
}

// Logging holds log output settings.
type Logging struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"; default "info"
	Format string `yaml:"format"` // "json" or "text"; default "json"
	Sentry Sentry `yaml:"sentry"`
}

// Sentry holds error-shipping settings. An empty DSN disables Sentry.
type Sentry struct {
	DSN         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
}

// Sessions holds session store and cookie settings.
type Sessions struct {
	Backend       string `yaml:"backend"`        // "file", "redis", "postgres"; default "file"
	Dir           string `yaml:"dir"`            // file backend directory; default "./sessions"
	Format        string `yaml:"format"`         // "json" or "yaml"; default "json"
	CookieName    string `yaml:"cookie_name"`    // default "__sid"
	MaxAge        int    `yaml:"max_age"`        // cookie lifetime in seconds; default 86400
	RedisURL      string `yaml:"redis_url"`      // required for the redis backend
	PostgresURL   string `yaml:"postgres_url"`   // required for the postgres backend
	PruneSchedule string `yaml:"prune_schedule"` // cron spec; empty disables pruning
}

// Cookies holds cookie manager settings.
type Cookies struct {
	Secret string `yaml:"secret"` // HMAC/encryption secret; required for signed cookies
	Secure bool   `yaml:"secure"` // default false; set true behind TLS
}

// Defaults returns a Config with every default filled in.
func Defaults() Config {
	return Config{
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
		Sessions: Sessions{
			Backend:    "file",
			Dir:        "./sessions",
			Format:     "json",
			CookieName: "__sid",
			MaxAge:     86400,
		},
	}
}

// SlogLevel maps the configured level string to a slog.Level.
// Unknown values map to info.
func (l Logging) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
