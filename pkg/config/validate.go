package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for consistent values. All problems are
// reported at once, joined into a single error.
func (c *Config) Validate() error {
	var errs []error

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level))
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be %q or %q, got %q", "json", "text", c.Logging.Format))
	}

	switch c.Sessions.Backend {
	case "file":
		if c.Sessions.Dir == "" {
			errs = append(errs, errors.New("sessions.dir is required for the file backend"))
		}
	case "redis":
		if c.Sessions.RedisURL == "" {
			errs = append(errs, errors.New("sessions.redis_url is required for the redis backend"))
		}
	case "postgres":
		if c.Sessions.PostgresURL == "" {
			errs = append(errs, errors.New("sessions.postgres_url is required for the postgres backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("sessions.backend must be one of file, redis, postgres; got %q", c.Sessions.Backend))
	}

	switch c.Sessions.Format {
	case "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("sessions.format must be %q or %q, got %q", "json", "yaml", c.Sessions.Format))
	}

	if c.Sessions.CookieName == "" {
		errs = append(errs, errors.New("sessions.cookie_name must not be empty"))
	}
	if c.Sessions.MaxAge <= 0 {
		errs = append(errs, fmt.Errorf("sessions.max_age must be > 0, got %d", c.Sessions.MaxAge))
	}

	return errors.Join(errs...)
}
