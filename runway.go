package runway

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/runway/internal"
	"github.com/dmitrymomot/runway/pkg/cookie"
	"github.com/dmitrymomot/runway/pkg/logger"
	"github.com/dmitrymomot/runway/pkg/session"
	"github.com/dmitrymomot/runway/pkg/web"
)

// Type aliases - public API
type (
	// App dispatches requests to registered handlers. T is the session
	// payload type shared by every handler of the app.
	App[T any] = internal.App[T]

	// Router is the interface handlers use to declare routes.
	Router[T any] = internal.Router[T]

	// Context provides request/response access and helper methods.
	Context[T any] = internal.Context[T]

	// Handler declares routes on a router.
	Handler[T any] = internal.Handler[T]

	// HandlerFunc is the signature for route handlers.
	HandlerFunc[T any] = internal.HandlerFunc[T]

	// Flight runs before or after a handler and either continues or
	// rejects the request.
	Flight[T any] = internal.Flight[T]

	// Outcome is a flight's verdict: Continue or Rejected.
	Outcome = internal.Outcome

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler[T any] = internal.ErrorHandler[T]

	// Option configures the application.
	Option[T any] = internal.Option[T]

	// RouteOption attaches per-route flights at registration time.
	RouteOption[T any] = internal.RouteOption[T]

	// SessionOption configures the session cookie.
	SessionOption = internal.SessionOption

	// HTTPError is a request failure with data for rendering an error page.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// PanicError is a panic recovered during dispatch.
	PanicError = internal.PanicError

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor

	// CookieOption configures the cookie manager.
	CookieOption = cookie.Option

	// Session represents a user session with a typed payload.
	Session[T any] = session.Session[T]

	// SessionStore defines the interface for session persistence.
	SessionStore[T any] = session.Store[T]

	// Request is the parsed request handed to the app by a transport.
	Request = web.Request

	// Response is the buffered response the app builds for a transport.
	Response = web.Response

	// SameSite is a cookie SameSite attribute value.
	SameSite = web.SameSite
)

// Flight outcomes.
const (
	// Continue passes control to the next flight or the handler.
	Continue = internal.Continue

	// Rejected stops the current phase; the flight wrote the response.
	Rejected = internal.Rejected
)

// SameSite attribute values for cookie options.
const (
	SameSiteDefault = web.SameSiteDefault
	SameSiteLax     = web.SameSiteLax
	SameSiteStrict  = web.SameSiteStrict
	SameSiteNone    = web.SameSiteNone
)

// New creates a new application with the given options.
// The App is immutable after creation.
//
// Example:
//
//	app := runway.New[Visitor](
//	    runway.WithSession(store),
//	    runway.WithHandlers[Visitor](
//	        handlers.NewGuestbook(repo),
//	    ),
//	)
//
//	err := cgi.Serve(ctx, app)
func New[T any](opts ...Option[T]) *App[T] {
	return internal.New(opts...)
}

// App options

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers[T any](h ...Handler[T]) Option[T] {
	return internal.WithHandlers(h...)
}

// WithPreFlights adds app-level pre-flights. They run before every route's
// handler, before any route-level pre-flights, in the order provided.
func WithPreFlights[T any](flights ...Flight[T]) Option[T] {
	return internal.WithPreFlights(flights...)
}

// WithPostFlights adds app-level post-flights. They run after every route's
// handler, before any route-level post-flights, in the order provided.
func WithPostFlights[T any](flights ...Flight[T]) Option[T] {
	return internal.WithPostFlights(flights...)
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a handler returns a non-nil error.
func WithErrorHandler[T any](h ErrorHandler[T]) Option[T] {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler[T any](h HandlerFunc[T]) Option[T] {
	return internal.WithNotFoundHandler(h)
}

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
// Extractors pull values from context (e.g., request_id).
//
// Example:
//
//	runway.New[Visitor](
//	    runway.WithLogger[Visitor]("guestbook", flights.RequestIDExtractor),
//	)
func WithLogger[T any](component string, extractors ...ContextExtractor) Option[T] {
	return internal.WithLogger[T](component, extractors...)
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
	return internal.WithCustomLogger[T](l)
}

// WithCookieOptions configures the cookie manager.
//
// Example:
//
//	runway.New[Visitor](
//	    runway.WithCookieOptions[Visitor](
//	        runway.WithCookieSecret(os.Getenv("COOKIE_SECRET")),
//	        runway.WithCookieSecure(true),
//	    ),
//	)
func WithCookieOptions[T any](opts ...CookieOption) Option[T] {
	return internal.WithCookieOptions[T](opts...)
}

// Route options

// WithPreFlight appends pre-flights to a single route. They run after any
// app-level pre-flights, in the order given.
func WithPreFlight[T any](flights ...Flight[T]) RouteOption[T] {
	return internal.WithPreFlight(flights...)
}

// WithPostFlight appends post-flights to a single route. They run after any
// app-level post-flights, in the order given.
func WithPostFlight[T any](flights ...Flight[T]) RouteOption[T] {
	return internal.WithPostFlight(flights...)
}

// Session options

// WithSession enables server-side session management.
// A SessionStore implementation must be provided (e.g., session.NewFileStore).
// Sessions are materialized by the flights.LoadSession pre-flight or an
// InitSession call and saved automatically at the end of the request.
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
func WithSession[T any](store SessionStore[T], opts ...SessionOption) Option[T] {
	return internal.WithSession(store, opts...)
}

// WithSessionCookieName sets the session cookie name.
// Defaults to "__sid".
func WithSessionCookieName(name string) SessionOption {
	return internal.WithSessionCookieName(name)
}

// WithSessionMaxAge sets the session cookie max age in seconds.
// Defaults to 86400 (one day).
func WithSessionMaxAge(seconds int) SessionOption {
	return internal.WithSessionMaxAge(seconds)
}

// WithSessionDomain sets the session cookie domain.
func WithSessionDomain(domain string) SessionOption {
	return internal.WithSessionDomain(domain)
}

// WithSessionPath sets the session cookie path.
// Defaults to "/".
func WithSessionPath(path string) SessionOption {
	return internal.WithSessionPath(path)
}

// WithSessionSecure sets the session cookie Secure flag.
// Defaults to false (should be true in production with HTTPS).
func WithSessionSecure(secure bool) SessionOption {
	return internal.WithSessionSecure(secure)
}

// WithSessionHTTPOnly sets the session cookie HttpOnly flag.
// Defaults to true (recommended for security).
func WithSessionHTTPOnly(httpOnly bool) SessionOption {
	return internal.WithSessionHTTPOnly(httpOnly)
}

// WithSessionSameSite sets the session cookie SameSite attribute.
// Defaults to SameSiteLax.
func WithSessionSameSite(sameSite SameSite) SessionOption {
	return internal.WithSessionSameSite(sameSite)
}

// Cookie options

// WithCookieSecret sets the secret for signing and encryption.
// Must be at least 32 bytes.
func WithCookieSecret(secret string) CookieOption {
	return cookie.WithSecret(secret)
}

// WithCookieDomain sets the cookie domain.
func WithCookieDomain(domain string) CookieOption {
	return cookie.WithDomain(domain)
}

// WithCookiePath sets the cookie path.
func WithCookiePath(path string) CookieOption {
	return cookie.WithPath(path)
}

// WithCookieSecure sets the Secure flag.
func WithCookieSecure(secure bool) CookieOption {
	return cookie.WithSecure(secure)
}

// WithCookieHTTPOnly sets the HttpOnly flag.
func WithCookieHTTPOnly(httpOnly bool) CookieOption {
	return cookie.WithHTTPOnly(httpOnly)
}

// WithCookieSameSite sets the SameSite attribute.
func WithCookieSameSite(ss SameSite) CookieOption {
	return cookie.WithSameSite(ss)
}

// Cookie errors for checking return values.
var (
	ErrCookieNotFound  = cookie.ErrNotFound
	ErrCookieNoSecret  = cookie.ErrNoSecret
	ErrCookieBadSecret = cookie.ErrBadSecret
	ErrCookieBadSig    = cookie.ErrBadSig
	ErrCookieDecrypt   = cookie.ErrDecrypt
)

// Session errors for checking return values.
var (
	ErrSessionNotConfigured  = session.ErrNotConfigured
	ErrSessionNotInitialized = session.ErrNotInitialized
	ErrSessionCorrupted      = session.ErrCorrupted
	ErrSessionInvalidID      = session.ErrInvalidID
)

// HTTP errors

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

// IsHTTPError returns true if the error is or wraps an HTTPError.
func IsHTTPError(err error) bool {
	return internal.IsHTTPError(err)
}

// AsHTTPError extracts the HTTPError from an error if present.
// Returns nil if the error is not an HTTPError.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// IsPanicError returns true if the error is or wraps a PanicError.
func IsPanicError(err error) bool {
	return internal.IsPanicError(err)
}

// AsPanicError extracts the PanicError from an error if present.
// Returns nil if the error is not a PanicError.
func AsPanicError(err error) *PanicError {
	return internal.AsPanicError(err)
}

// HTTPError constructors for common request failures.
var (
	ErrBadRequest         = internal.ErrBadRequest
	ErrUnauthorized       = internal.ErrUnauthorized
	ErrForbidden          = internal.ErrForbidden
	ErrNotFound           = internal.ErrNotFound
	ErrConflict           = internal.ErrConflict
	ErrUnprocessable      = internal.ErrUnprocessable
	ErrInternal           = internal.ErrInternal
	ErrServiceUnavailable = internal.ErrServiceUnavailable
)

// HTTPError options.

// WithErrTitle sets the error page title.
func WithErrTitle(title string) HTTPErrorOption {
	return internal.WithTitle(title)
}

// WithErrDetail sets an extended description for the error page.
func WithErrDetail(detail string) HTTPErrorOption {
	return internal.WithDetail(detail)
}

// WithErrCode sets an application-specific error code.
func WithErrCode(code string) HTTPErrorOption {
	return internal.WithErrorCode(code)
}

// WithErrRequestID sets the request tracking ID.
func WithErrRequestID(id string) HTTPErrorOption {
	return internal.WithRequestID(id)
}

// WithErrCause attaches the underlying error for logging.
func WithErrCause(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// Context helpers

// ContextValue retrieves a request-scoped value by key and asserts its type.
// The second return is false when the key is absent or holds a different
// type. Use it with keys stored via Context.Set.
//
// Example:
//
//	type tenantKey struct{}
//
//	tenant, ok := runway.ContextValue[string](c, tenantKey{})
func ContextValue[V any](ctx context.Context, key any) (V, bool) {
	return internal.ContextValue[V](ctx, key)
}
