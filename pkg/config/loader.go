package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load resolves configuration from defaults, an optional YAML file, and
// RUNWAY_* environment variables, then validates the result.
//
// When path is empty the file is discovered: the RUNWAY_CONFIG environment
// variable first, then ./config.yaml, then /etc/runway/config.yaml. No file
// found anywhere is fine; an explicit or discovered path that fails to read
// or parse is an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if file := discoverFile(path); file != "" {
		if err := loadFile(file, &cfg); err != nil {
			return nil, fmt.Errorf("config file %s: %w", file, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

func discoverFile(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv("RUNWAY_CONFIG"); env != "" {
		return env
	}
	for _, candidate := range []string{"config.yaml", "/etc/runway/config.yaml"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// loadFile parses YAML over cfg. Fields absent from the file keep their
// current values.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnv(cfg *Config) {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString("RUNWAY_LOG_LEVEL", &cfg.Logging.Level)
	setString("RUNWAY_LOG_FORMAT", &cfg.Logging.Format)
	setString("RUNWAY_SENTRY_DSN", &cfg.Logging.Sentry.DSN)
	setString("RUNWAY_SENTRY_ENVIRONMENT", &cfg.Logging.Sentry.Environment)
	setString("RUNWAY_SESSION_BACKEND", &cfg.Sessions.Backend)
	setString("RUNWAY_SESSION_DIR", &cfg.Sessions.Dir)
	setString("RUNWAY_SESSION_FORMAT", &cfg.Sessions.Format)
	setString("RUNWAY_SESSION_COOKIE", &cfg.Sessions.CookieName)
	setString("RUNWAY_REDIS_URL", &cfg.Sessions.RedisURL)
	setString("RUNWAY_POSTGRES_URL", &cfg.Sessions.PostgresURL)
	setString("RUNWAY_PRUNE_SCHEDULE", &cfg.Sessions.PruneSchedule)
	setString("RUNWAY_COOKIE_SECRET", &cfg.Cookies.Secret)

	// Malformed numeric or boolean overrides are ignored; validation catches
	// anything that leaves the config inconsistent.
	if v := os.Getenv("RUNWAY_SESSION_MAX_AGE"); v != "" {
		if age, err := strconv.Atoi(v); err == nil {
			cfg.Sessions.MaxAge = age
		}
	}
	if v := os.Getenv("RUNWAY_COOKIE_SECURE"); v != "" {
		if secure, err := strconv.ParseBool(v); err == nil {
			cfg.Cookies.Secure = secure
		}
	}
}
