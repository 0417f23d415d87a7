package internal

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/dmitrymomot/runway/pkg/cookie"
	"github.com/dmitrymomot/runway/pkg/session"
	"github.com/dmitrymomot/runway/pkg/web"
)

// Context provides request/response access and helper methods. T is the
// application's session payload type, so session access is statically typed.
// It also implements context.Context by delegating to the request-scoped
// context.
type Context[T any] interface {
	context.Context

	// Request returns the request being handled.
	Request() *web.Request

	// Response returns the response under construction. The response is
	// fully buffered; nothing reaches the client before dispatch completes.
	Response() *web.Response

	// Context returns the request-scoped context.Context.
	Context() context.Context

	// Param returns a parameter by name, consulting path parameters first
	// and query parameters second.
	Param(name string) string

	// PathParam returns the value bound by a :name route segment.
	// Returns empty string if the parameter doesn't exist.
	PathParam(name string) string

	// Query returns the query parameter value by name.
	// Returns empty string if the parameter doesn't exist.
	Query(name string) string

	// QueryDefault returns the query parameter value or a default.
	QueryDefault(name, defaultValue string) string

	// Form returns the form field value by name.
	// Returns empty string if the field doesn't exist.
	Form(name string) string

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// String writes a plain text response with the given status code.
	String(code int, s string) error

	// HTML writes an HTML response with the given status code.
	HTML(code int, body string) error

	// JSON writes a JSON response with the given status code.
	JSON(code int, v any) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// Redirect writes a redirect to the given URL with the given status code.
	Redirect(code int, url string) error

	// Error creates and returns an HTTPError without writing a response.
	// The error should be returned from the handler to trigger the error handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Written returns true if anything has been written to the response.
	Written() bool

	// Logger returns the logger for advanced usage.
	Logger() *slog.Logger

	// LogDebug logs a debug message with optional attributes.
	LogDebug(msg string, attrs ...any)

	// LogInfo logs an info message with optional attributes.
	LogInfo(msg string, attrs ...any)

	// LogWarn logs a warning message with optional attributes.
	LogWarn(msg string, attrs ...any)

	// LogError logs an error message with optional attributes.
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	// The value can be retrieved using Get or from c.Context().Value(key).
	Set(key any, value any)

	// Get retrieves a value from the request context.
	// Returns nil if the key is not found.
	Get(key any) any

	// Cookie returns a plain cookie value.
	Cookie(name string) (string, error)

	// SetCookie sets a plain cookie.
	SetCookie(name, value string, maxAge int)

	// DeleteCookie removes a cookie.
	DeleteCookie(name string)

	// CookieSigned returns a signed cookie value.
	// Returns cookie.ErrNoSecret if no secret is configured.
	CookieSigned(name string) (string, error)

	// SetCookieSigned sets a signed cookie.
	// Returns cookie.ErrNoSecret if no secret is configured.
	SetCookieSigned(name, value string, maxAge int) error

	// CookieEncrypted returns an encrypted cookie value.
	// Returns cookie.ErrNoSecret if no secret is configured.
	CookieEncrypted(name string) (string, error)

	// SetCookieEncrypted sets an encrypted cookie.
	// Returns cookie.ErrNoSecret if no secret is configured.
	SetCookieEncrypted(name, value string, maxAge int) error

	// Flash reads and deletes a flash message.
	// Returns cookie.ErrNoSecret if no secret is configured.
	Flash(key string, dest any) error

	// SetFlash sets a flash message.
	// Returns cookie.ErrNoSecret if no secret is configured.
	SetFlash(key string, value any) error

	// InitSession materializes the session for this request: it loads the
	// session named by the request cookie, or creates a fresh one when the
	// cookie is absent or names nothing. Idempotent; a second call is a
	// no-op. Returns session.ErrNotConfigured if WithSession was not used.
	InitSession() error

	// Session returns the session materialized by InitSession. Calling it
	// before InitSession is an ordering fault and returns
	// session.ErrNotInitialized, which is fatal to the request. Register
	// the LoadSession pre-flight (or call InitSession) on routes that use
	// sessions.
	Session() (*session.Session[T], error)

	// DestroySession marks the session for removal. The stored record is
	// deleted and the cookie expired when the request finishes.
	// Returns session.ErrNotConfigured if WithSession was not used.
	DestroySession() error
}

// ContextValue retrieves a request-scoped value by key and asserts its type.
// The second return is false when the key is absent or holds a different
// type. Use it with keys stored via Context.Set.
func ContextValue[V any](ctx context.Context, key any) (V, bool) {
	v, ok := ctx.Value(key).(V)
	return v, ok
}

// requestContext implements the Context interface.
type requestContext[T any] struct {
	ctx      context.Context
	request  *web.Request
	response *web.Response
	logger   *slog.Logger
	cookies  *cookie.Manager

	sessions *sessionManager[T]
	session  *session.Session[T]
}

func newContext[T any](ctx context.Context, req *web.Request, res *web.Response, app *App[T]) *requestContext[T] {
	return &requestContext[T]{
		ctx:      ctx,
		request:  req,
		response: res,
		logger:   app.logger,
		cookies:  app.cookies,
		sessions: app.sessions,
	}
}

func (c *requestContext[T]) Request() *web.Request {
	return c.request
}

func (c *requestContext[T]) Response() *web.Response {
	return c.response
}

func (c *requestContext[T]) Context() context.Context {
	return c.ctx
}

func (c *requestContext[T]) Deadline() (time.Time, bool) {
	return c.ctx.Deadline()
}

func (c *requestContext[T]) Done() <-chan struct{} {
	return c.ctx.Done()
}

func (c *requestContext[T]) Err() error {
	return c.ctx.Err()
}

func (c *requestContext[T]) Value(key any) any {
	return c.ctx.Value(key)
}

func (c *requestContext[T]) Param(name string) string {
	return c.request.Param(name)
}

func (c *requestContext[T]) PathParam(name string) string {
	return c.request.PathParam(name)
}

func (c *requestContext[T]) Query(name string) string {
	return c.request.Query(name)
}

func (c *requestContext[T]) QueryDefault(name, defaultValue string) string {
	return c.request.QueryDefault(name, defaultValue)
}

func (c *requestContext[T]) Form(name string) string {
	return c.request.Form(name)
}

func (c *requestContext[T]) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext[T]) SetHeader(name, value string) {
	c.response.Header.Set(name, value)
}

func (c *requestContext[T]) String(code int, s string) error {
	c.response.SetContentType("text/plain; charset=utf-8")
	c.response.SetStatus(code)
	_, err := c.response.WriteString(s)
	return err
}

func (c *requestContext[T]) HTML(code int, body string) error {
	c.response.SetContentType("text/html; charset=utf-8")
	c.response.SetStatus(code)
	_, err := c.response.WriteString(body)
	return err
}

func (c *requestContext[T]) JSON(code int, v any) error {
	c.response.SetContentType("application/json; charset=utf-8")
	c.response.SetStatus(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *requestContext[T]) NoContent(code int) error {
	c.response.SetStatus(code)
	return nil
}

func (c *requestContext[T]) Redirect(code int, url string) error {
	c.response.SetStatus(code)
	c.response.Header.Set("Location", url)
	return nil
}

func (c *requestContext[T]) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	err := NewHTTPError(code, message)
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (c *requestContext[T]) Written() bool {
	return c.response.Written()
}

func (c *requestContext[T]) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext[T]) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.ctx, msg, attrs...)
}

func (c *requestContext[T]) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.ctx, msg, attrs...)
}

func (c *requestContext[T]) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.ctx, msg, attrs...)
}

func (c *requestContext[T]) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.ctx, msg, attrs...)
}

func (c *requestContext[T]) Set(key, value any) {
	c.ctx = context.WithValue(c.ctx, key, value)
}

func (c *requestContext[T]) Get(key any) any {
	return c.ctx.Value(key)
}

func (c *requestContext[T]) Cookie(name string) (string, error) {
	return c.cookies.Get(c.request, name)
}

func (c *requestContext[T]) SetCookie(name, value string, maxAge int) {
	c.cookies.Set(c.response, name, value, maxAge)
}

func (c *requestContext[T]) DeleteCookie(name string) {
	c.cookies.Delete(c.response, name)
}

func (c *requestContext[T]) CookieSigned(name string) (string, error) {
	return c.cookies.GetSigned(c.request, name)
}

func (c *requestContext[T]) SetCookieSigned(name, value string, maxAge int) error {
	return c.cookies.SetSigned(c.response, name, value, maxAge)
}

func (c *requestContext[T]) CookieEncrypted(name string) (string, error) {
	return c.cookies.GetEncrypted(c.request, name)
}

func (c *requestContext[T]) SetCookieEncrypted(name, value string, maxAge int) error {
	return c.cookies.SetEncrypted(c.response, name, value, maxAge)
}

func (c *requestContext[T]) Flash(key string, dest any) error {
	return c.cookies.Flash(c.response, c.request, key, dest)
}

func (c *requestContext[T]) SetFlash(key string, value any) error {
	return c.cookies.SetFlash(c.response, key, value)
}

func (c *requestContext[T]) InitSession() error {
	if c.sessions == nil {
		return session.ErrNotConfigured
	}
	if c.session != nil {
		return nil
	}
	sess, err := c.sessions.LoadOrCreate(c.ctx, c.request)
	if err != nil {
		return err
	}
	c.session = sess
	return nil
}

func (c *requestContext[T]) Session() (*session.Session[T], error) {
	if c.sessions == nil {
		return nil, session.ErrNotConfigured
	}
	if c.session == nil {
		return nil, session.ErrNotInitialized
	}
	return c.session, nil
}

func (c *requestContext[T]) DestroySession() error {
	if err := c.InitSession(); err != nil {
		return err
	}
	c.session.MarkDeleted()
	return nil
}

var _ Context[any] = (*requestContext[any])(nil)
