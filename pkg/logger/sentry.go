package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string
	Environment string
	// MinLevel determines which log levels ship to Sentry. LevelError sends
	// only errors; anything lower also sends warnings.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes locally and ships warnings and
// errors to Sentry. An empty DSN degrades to local-only logging, as does a
// failed Sentry init, so local development needs no special casing.
func NewWithSentry(cfg SentryConfig, opts ...Option) *slog.Logger {
	o := apply(opts)
	local := o.handler()

	if cfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(local, o.extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(local, o.extractors...))
	}

	// Errors create Sentry issues; logs are stored for context and search.
	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel,
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	combined := newMultiHandler(local, sentryHandler)
	return slog.New(NewLogHandlerDecorator(combined, o.extractors...))
}
