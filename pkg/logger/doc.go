// Package logger provides structured logging with context extraction and
// optional Sentry error reporting.
//
// It extends log/slog with two capabilities: attributes extracted from the
// context on every log call, and a multi-destination handler that tees
// warnings and errors to Sentry. Output goes to stderr by default, which
// matters under process-per-request transports where stdout belongs to the
// response.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(flights.RequestIDExtractor()),
//	)
//
//	log.InfoContext(ctx, "request handled", slog.Int("status", 200))
//	// {"level":"INFO","msg":"request handled","status":200,"request_id":"..."}
//
// A [ContextExtractor] pulls one attribute out of a context; the decorator
// applies every extractor per record, so request-scoped values follow the
// log call automatically.
//
// # Sentry
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//	})
//
// With an empty DSN, or when Sentry init fails, the logger silently degrades
// to local-only output. [NewNope] returns a logger that discards everything
// and serves as the default wherever logging is optional.
package logger
