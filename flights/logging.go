package flights

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/runway/internal"
)

// startTimeKey is the context key for the request start time.
type startTimeKey struct{}

// LoggingConfig configures the request logging flights.
type LoggingConfig struct {
	Message string     // Log message, default "request served"
	Level   slog.Level // Log level, default slog.LevelInfo
}

// LoggingOption configures LoggingConfig.
type LoggingOption func(*LoggingConfig)

// WithLoggingMessage sets the log message.
func WithLoggingMessage(msg string) LoggingOption {
	return func(cfg *LoggingConfig) {
		cfg.Message = msg
	}
}

// WithLoggingLevel sets the level request lines are logged at.
func WithLoggingLevel(level slog.Level) LoggingOption {
	return func(cfg *LoggingConfig) {
		cfg.Level = level
	}
}

// Logging returns the request logging pair: a pre-flight that records the
// start time and a post-flight that writes one line per served request with
// method, path, status, response size, and duration.
//
// Post-flights are skipped for rejected and failed requests, so only served
// requests are logged here; the dispatcher's error path covers the rest.
func Logging[T any](opts ...LoggingOption) (pre, post internal.Flight[T]) {
	cfg := &LoggingConfig{
		Message: "request served",
		Level:   slog.LevelInfo,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	pre = func(c internal.Context[T]) (internal.Outcome, error) {
		c.Set(startTimeKey{}, time.Now())
		return internal.Continue, nil
	}

	post = func(c internal.Context[T]) (internal.Outcome, error) {
		attrs := []any{
			"method", c.Request().Method,
			"path", c.Request().Path,
			"status", c.Response().Status(),
			"bytes", c.Response().Len(),
		}
		if start, ok := internal.ContextValue[time.Time](c, startTimeKey{}); ok {
			attrs = append(attrs, "duration", time.Since(start))
		}

		c.Logger().Log(c.Context(), cfg.Level, cfg.Message, attrs...)
		return internal.Continue, nil
	}

	return pre, post
}
