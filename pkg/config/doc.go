// Package config loads application configuration in layers.
//
// Configuration is resolved in order, later layers overriding earlier ones:
//
//  1. Built-in defaults
//  2. YAML config file (explicit path, RUNWAY_CONFIG, or a well-known location)
//  3. RUNWAY_* environment variable overrides
//  4. Validation
//
// Every setting in this package maps to a constructor option elsewhere in the
// module, so embedding applications that wire stores and loggers by hand can
// skip config files entirely. The package exists for deployments that prefer
// one YAML file plus a handful of environment variables.
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	logger := logger.New(logger.WithLevel(cfg.Logging.SlogLevel()))
//	store := session.NewFileStore[Account](cfg.Sessions.Dir)
//
// An empty path consults the RUNWAY_CONFIG environment variable, then
// ./config.yaml, then /etc/runway/config.yaml. A missing config file is not
// an error; defaults and environment overrides still apply.
//
// # Environment overrides
//
// Each override targets one field and wins over the file value:
//
//	RUNWAY_LOG_LEVEL           logging.level
//	RUNWAY_LOG_FORMAT          logging.format
//	RUNWAY_SENTRY_DSN          logging.sentry.dsn
//	RUNWAY_SENTRY_ENVIRONMENT  logging.sentry.environment
//	RUNWAY_SESSION_BACKEND     sessions.backend
//	RUNWAY_SESSION_DIR         sessions.dir
//	RUNWAY_SESSION_FORMAT      sessions.format
//	RUNWAY_SESSION_COOKIE      sessions.cookie_name
//	RUNWAY_SESSION_MAX_AGE     sessions.max_age
//	RUNWAY_REDIS_URL           sessions.redis_url
//	RUNWAY_POSTGRES_URL        sessions.postgres_url
//	RUNWAY_PRUNE_SCHEDULE      sessions.prune_schedule
//	RUNWAY_COOKIE_SECRET       cookies.secret
//	RUNWAY_COOKIE_SECURE       cookies.secure
package config
