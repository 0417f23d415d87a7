package internal

import (
	"log/slog"

	"github.com/dmitrymomot/runway/pkg/cookie"
	"github.com/dmitrymomot/runway/pkg/logger"
	"github.com/dmitrymomot/runway/pkg/session"
)

// Option configures the application.
type Option[T any] func(*App[T])

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
// Extractors pull values from context (e.g., request_id).
//
// Example:
//
//	runway.New[Visitor](
//	    runway.WithLogger[Visitor]("guestbook", flights.RequestIDExtractor),
//	)
func WithLogger[T any](component string, extractors ...logger.ContextExtractor) Option[T] {
	return func(a *App[T]) {
		a.logger = logger.New(logger.WithExtractors(extractors...)).With("component", component)
	}
}

// WithCustomLogger sets a fully custom logger.
// Use this when you need complete control over logging configuration.
//
// Example:
//
//	customLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	runway.New[Visitor](
//	    runway.WithCustomLogger[Visitor](customLogger),
//	)
func WithCustomLogger[T any](l *slog.Logger) Option[T] {
	return func(a *App[T]) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithCookieOptions configures the cookie manager.
//
// Example:
//
//	runway.New[Visitor](
//	    runway.WithCookieOptions[Visitor](
//	        cookie.WithSecret(os.Getenv("COOKIE_SECRET")),
//	        cookie.WithSecure(true),
//	    ),
//	)
func WithCookieOptions[T any](opts ...cookie.Option) Option[T] {
	return func(a *App[T]) {
		a.cookies = cookie.New(opts...)
	}
}

// WithSession enables server-side session management. A session.Store
// implementation must be provided (e.g., session.NewFileStore). Sessions are
// materialized by the LoadSession pre-flight or an InitSession call and
// saved automatically at the end of the request.
//
// Example:
//
//	store := session.NewFileStore[Visitor]("/var/lib/app/sessions")
//	runway.New[Visitor](
//	    runway.WithSession(store,
//	        runway.WithSessionMaxAge(86400*30),
//	        runway.WithSessionSecure(true),
//	    ),
//	)
func WithSession[T any](store session.Store[T], opts ...SessionOption) Option[T] {
	return func(a *App[T]) {
		if store != nil {
			a.sessions = newSessionManager(store, opts...)
		}
	}
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a handler returns a non-nil error. The response is reset
// before the handler runs; returning a non-nil error falls back to the
// default error rendering.
//
// Example:
//
//	runway.WithErrorHandler[Visitor](func(c runway.Context[Visitor], err error) error {
//	    return c.HTML(http.StatusInternalServerError, errorPage(err))
//	})
func WithErrorHandler[T any](h ErrorHandler[T]) Option[T] {
	return func(a *App[T]) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets a custom 404 handler.
//
// Example:
//
//	runway.WithNotFoundHandler[Visitor](func(c runway.Context[Visitor]) error {
//	    return c.String(http.StatusNotFound, "Page not found")
//	})
func WithNotFoundHandler[T any](h HandlerFunc[T]) Option[T] {
	return func(a *App[T]) {
		a.notFoundHandler = h
	}
}

// WithPreFlights adds app-level pre-flights. They run before every route's
// handler, before any route-level pre-flights, in the order provided.
func WithPreFlights[T any](flights ...Flight[T]) Option[T] {
	return func(a *App[T]) {
		a.pre = append(a.pre, flights...)
	}
}

// WithPostFlights adds app-level post-flights. They run after every route's
// handler, before any route-level post-flights, in the order provided.
func WithPostFlights[T any](flights ...Flight[T]) Option[T] {
	return func(a *App[T]) {
		a.post = append(a.post, flights...)
	}
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers[T any](h ...Handler[T]) Option[T] {
	return func(a *App[T]) {
		a.handlers = append(a.handlers, h...)
	}
}
