package internal

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/runway/pkg/cookie"
	"github.com/dmitrymomot/runway/pkg/logger"
	"github.com/dmitrymomot/runway/pkg/web"
)

// App dispatches requests to registered handlers. It owns the route table,
// the flight chains, session persistence, and the error path.
// App is immutable after creation - all configuration is done via New().
//
// One Handle call serves one request start to finish. The app itself holds
// no per-request state, so the embedding transport decides the process
// model; the bundled CGI transport calls Handle exactly once per process.
type App[T any] struct {
	table           *routeTable[T]
	root            *router[T]
	logger          *slog.Logger
	cookies         *cookie.Manager
	sessions        *sessionManager[T]
	errorHandler    ErrorHandler[T]
	notFoundHandler HandlerFunc[T]
	pre             []Flight[T]
	post            []Flight[T]
	handlers        []Handler[T]
}

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
func New[T any](opts ...Option[T]) *App[T] {
	a := &App[T]{
		table:   &routeTable[T]{},
		logger:  logger.NewNope(), // Default: noop logger (before options)
		cookies: cookie.New(),     // Default: cookie manager (no secret)
	}

	for _, opt := range opts {
		opt(a)
	}

	a.setupRoutes()
	return a
}

// setupRoutes wires app-level flights into the root router and registers
// handlers. Runs after all options so route registration sees the final
// flight chains.
func (a *App[T]) setupRoutes() {
	a.root = newRouter(a.table)
	a.root.Use(a.pre...)
	a.root.UseAfter(a.post...)
	for _, h := range a.handlers {
		h.Routes(a.root)
	}
}

// Logger returns the app's logger for use by transports and hooks.
func (a *App[T]) Logger() *slog.Logger {
	return a.logger
}

// Handle serves one request: it routes, runs the flight chains and the
// handler, persists the session, and on failure renders an error response.
// The response is fully buffered; the caller writes it out only after
// Handle returns.
//
// Handle returns nil whenever the response answers the request, including
// rejected and failed requests that the error path answered. A non-nil
// return means even the error handler failed and the response content is
// undefined.
func (a *App[T]) Handle(ctx context.Context, req *web.Request, res *web.Response) error {
	if ctx == nil {
		ctx = context.Background()
	}
	c := newContext(ctx, req, res, a)

	err := a.serve(c)
	if err == nil {
		err = a.finalizeSession(c)
	}
	if err == nil {
		return nil
	}

	a.logError(c, err)
	return a.renderError(c, err)
}

// serve routes the request and runs its chain with panic containment. A
// panic in any flight or handler surfaces as a *PanicError so one broken
// route cannot take down the transport.
func (a *App[T]) serve(c *requestContext[T]) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &PanicError{Value: rec, Stack: debug.Stack()}
		}
	}()

	matched, err := a.table.dispatch(c)
	if err != nil {
		return err
	}
	if !matched {
		// A route miss is a normal outcome, not an error.
		return a.notFound(c)
	}
	return nil
}

func (a *App[T]) notFound(c *requestContext[T]) error {
	if a.notFoundHandler != nil {
		return a.notFoundHandler(c)
	}
	return c.String(http.StatusNotFound, "404 page not found")
}

// finalizeSession persists session state touched during the request and
// emits the session cookie when one is owed. It runs only on the success
// path; a failed request never saves session state.
func (a *App[T]) finalizeSession(c *requestContext[T]) error {
	if a.sessions == nil || c.session == nil {
		return nil
	}
	return a.sessions.Finalize(c.ctx, c.session, c.response)
}

func (a *App[T]) logError(c *requestContext[T], err error) {
	attrs := []any{
		"method", c.request.Method,
		"path", c.request.Path,
		"error", err,
	}
	if pe := AsPanicError(err); pe != nil {
		a.logger.ErrorContext(c.ctx, "panic while handling request", append(attrs, "stack", string(pe.Stack))...)
		return
	}
	if he := AsHTTPError(err); he != nil && he.Code < http.StatusInternalServerError {
		a.logger.WarnContext(c.ctx, "request rejected", attrs...)
		return
	}
	a.logger.ErrorContext(c.ctx, "request failed", attrs...)
}

// renderError turns a hard error into a response. Whatever the failed
// handler wrote is discarded; error pages always start from a clean
// response.
func (a *App[T]) renderError(c *requestContext[T], err error) error {
	c.response.Reset()

	if a.errorHandler != nil {
		herr := a.errorHandler(c, err)
		if herr == nil {
			return nil
		}
		a.logger.ErrorContext(c.ctx, "error handler failed", "error", herr)
		c.response.Reset()
	}
	return a.defaultErrorResponse(c, err)
}

// defaultErrorResponse renders HTTPError values with their own status and
// message and everything else as a generic 500, leaking no internals.
func (a *App[T]) defaultErrorResponse(c *requestContext[T], err error) error {
	if he := AsHTTPError(err); he != nil {
		return c.String(he.Code, he.Message)
	}
	return c.String(http.StatusInternalServerError, "Internal Server Error")
}

// Router methods delegate to the root router, so routes can be registered
// directly on the app as well as through Handler implementations.

func (a *App[T]) GET(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	a.root.GET(path, h, opts...)
}

func (a *App[T]) POST(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	a.root.POST(path, h, opts...)
}

func (a *App[T]) PUT(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	a.root.PUT(path, h, opts...)
}

func (a *App[T]) PATCH(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	a.root.PATCH(path, h, opts...)
}

func (a *App[T]) DELETE(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	a.root.DELETE(path, h, opts...)
}

func (a *App[T]) HEAD(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	a.root.HEAD(path, h, opts...)
}

func (a *App[T]) OPTIONS(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	a.root.OPTIONS(path, h, opts...)
}

func (a *App[T]) Method(method, path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	a.root.Method(method, path, h, opts...)
}

func (a *App[T]) Group(fn func(r Router[T])) {
	a.root.Group(fn)
}

func (a *App[T]) Route(pattern string, fn func(r Router[T])) {
	a.root.Route(pattern, fn)
}

func (a *App[T]) Use(flights ...Flight[T]) {
	a.root.Use(flights...)
}

func (a *App[T]) UseAfter(flights ...Flight[T]) {
	a.root.UseAfter(flights...)
}

var _ Router[any] = (*App[any])(nil)
