package internal

import (
	"net/http"
	"slices"
	"strings"
)

// Router is the interface handlers use to declare routes.
// It provides HTTP method routing and grouping capabilities.
type Router[T any] interface {
	// GET registers a handler for GET requests.
	GET(path string, h HandlerFunc[T], opts ...RouteOption[T])

	// POST registers a handler for POST requests.
	POST(path string, h HandlerFunc[T], opts ...RouteOption[T])

	// PUT registers a handler for PUT requests.
	PUT(path string, h HandlerFunc[T], opts ...RouteOption[T])

	// PATCH registers a handler for PATCH requests.
	PATCH(path string, h HandlerFunc[T], opts ...RouteOption[T])

	// DELETE registers a handler for DELETE requests.
	DELETE(path string, h HandlerFunc[T], opts ...RouteOption[T])

	// HEAD registers a handler for HEAD requests.
	HEAD(path string, h HandlerFunc[T], opts ...RouteOption[T])

	// OPTIONS registers a handler for OPTIONS requests.
	OPTIONS(path string, h HandlerFunc[T], opts ...RouteOption[T])

	// Method registers a handler for an arbitrary HTTP method.
	Method(method, path string, h HandlerFunc[T], opts ...RouteOption[T])

	// Group creates an inline route group.
	// Routes defined inside fn share no common pattern prefix but inherit
	// the flights registered on this router so far.
	Group(fn func(r Router[T]))

	// Route creates a route group with a pattern prefix.
	// All routes defined inside fn share the pattern prefix.
	Route(pattern string, fn func(r Router[T]))

	// Use appends pre-flights to the router's stack. They apply to every
	// route registered after the call, in registration order.
	Use(flights ...Flight[T])

	// UseAfter appends post-flights to the router's stack. They apply to
	// every route registered after the call, in registration order.
	UseAfter(flights ...Flight[T])
}

// RouteOption attaches per-route flights at registration time.
type RouteOption[T any] func(*route[T])

// WithPreFlight appends pre-flights to a single route. They run after any
// router-level pre-flights, in the order given.
func WithPreFlight[T any](flights ...Flight[T]) RouteOption[T] {
	return func(rt *route[T]) {
		rt.pre = append(rt.pre, flights...)
	}
}

// WithPostFlight appends post-flights to a single route. They run after any
// router-level post-flights, in the order given.
func WithPostFlight[T any](flights ...Flight[T]) RouteOption[T] {
	return func(rt *route[T]) {
		rt.post = append(rt.post, flights...)
	}
}

// segment is one slash-delimited element of a route pattern. A binder
// segment (written ":name" in the pattern) matches any request segment and
// records its text under the parameter name; a literal segment matches
// byte-for-byte.
type segment struct {
	value string // literal text, or the parameter name for binders
	bind  bool
}

// route is one registered pattern with its handler and flights.
// Immutable after registration.
type route[T any] struct {
	method   string
	pattern  string
	segments []segment
	handler  HandlerFunc[T]
	pre      []Flight[T]
	post     []Flight[T]
}

// match reports whether the route matches the method and path segments.
// Bound parameter values are returned only on a full match, so a partial
// match never leaks bindings into the request.
func (rt *route[T]) match(method string, segs []string) (map[string]string, bool) {
	if method != rt.method || len(segs) != len(rt.segments) {
		return nil, false
	}
	var params map[string]string
	for i, s := range rt.segments {
		if s.bind {
			if params == nil {
				params = make(map[string]string, len(rt.segments))
			}
			params[s.value] = segs[i]
			continue
		}
		if s.value != segs[i] {
			return nil, false
		}
	}
	return params, true
}

// routeTable is the ordered set of routes shared by a router and all of its
// groups. Matching walks the table in registration order and the first full
// match wins; there is no specificity ranking.
type routeTable[T any] struct {
	routes []*route[T]
}

func (t *routeTable[T]) match(method, path string) (*route[T], map[string]string, bool) {
	segs := splitPath(path)
	for _, rt := range t.routes {
		if params, ok := rt.match(method, segs); ok {
			return rt, params, true
		}
	}
	return nil, nil, false
}

// dispatch matches the request and runs the route's pre-flights, handler,
// and post-flights. It reports whether any route matched; on no match it
// writes nothing, leaving the not-found response to the caller.
func (t *routeTable[T]) dispatch(ctx Context[T]) (bool, error) {
	req := ctx.Request()
	rt, params, ok := t.match(req.Method, req.Path)
	if !ok {
		return false, nil
	}
	for name, value := range params {
		req.SetPathParam(name, value)
	}

	outcome, err := runFlights(ctx, rt.pre)
	if err != nil {
		return true, err
	}
	if outcome == Rejected {
		// The rejecting flight wrote its response. The handler and all
		// post-flights are skipped.
		return true, nil
	}

	if err := rt.handler(ctx); err != nil {
		return true, err
	}

	if _, err := runFlights(ctx, rt.post); err != nil {
		return true, err
	}
	return true, nil
}

// router registers routes into a shared table. Group and Route return child
// routers layering a pattern prefix and inherited flights on top of the same
// table, so registration order is preserved across groups.
type router[T any] struct {
	table  *routeTable[T]
	prefix string
	pre    []Flight[T]
	post   []Flight[T]
}

func newRouter[T any](table *routeTable[T]) *router[T] {
	return &router[T]{table: table}
}

func (r *router[T]) GET(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	r.Method(http.MethodGet, path, h, opts...)
}

func (r *router[T]) POST(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	r.Method(http.MethodPost, path, h, opts...)
}

func (r *router[T]) PUT(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	r.Method(http.MethodPut, path, h, opts...)
}

func (r *router[T]) PATCH(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	r.Method(http.MethodPatch, path, h, opts...)
}

func (r *router[T]) DELETE(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	r.Method(http.MethodDelete, path, h, opts...)
}

func (r *router[T]) HEAD(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	r.Method(http.MethodHead, path, h, opts...)
}

func (r *router[T]) OPTIONS(path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	r.Method(http.MethodOptions, path, h, opts...)
}

func (r *router[T]) Method(method, path string, h HandlerFunc[T], opts ...RouteOption[T]) {
	rt := &route[T]{
		method:  method,
		pattern: joinPattern(r.prefix, path),
		handler: h,
		pre:     slices.Clone(r.pre),
		post:    slices.Clone(r.post),
	}
	rt.segments = parsePattern(rt.pattern)
	for _, opt := range opts {
		opt(rt)
	}
	r.table.routes = append(r.table.routes, rt)
}

func (r *router[T]) Group(fn func(Router[T])) {
	fn(&router[T]{
		table:  r.table,
		prefix: r.prefix,
		pre:    slices.Clone(r.pre),
		post:   slices.Clone(r.post),
	})
}

func (r *router[T]) Route(pattern string, fn func(Router[T])) {
	fn(&router[T]{
		table:  r.table,
		prefix: joinPattern(r.prefix, pattern),
		pre:    slices.Clone(r.pre),
		post:   slices.Clone(r.post),
	})
}

func (r *router[T]) Use(flights ...Flight[T]) {
	r.pre = append(r.pre, flights...)
}

func (r *router[T]) UseAfter(flights ...Flight[T]) {
	r.post = append(r.post, flights...)
}

// splitPath splits a request path into segments, discarding empties so that
// "/x", "x/" and "x" all normalize to the same single segment and "/" yields
// none.
func splitPath(path string) []string {
	var segs []string
	for s := range strings.SplitSeq(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// parsePattern splits a route pattern into match segments. A segment
// starting with ':' binds the corresponding request segment to the name
// after the colon; binders match exactly one segment, there is no catch-all.
func parsePattern(pattern string) []segment {
	var segs []segment
	for s := range strings.SplitSeq(pattern, "/") {
		if s == "" {
			continue
		}
		if name, ok := strings.CutPrefix(s, ":"); ok {
			segs = append(segs, segment{value: name, bind: true})
			continue
		}
		segs = append(segs, segment{value: s})
	}
	return segs
}

func joinPattern(prefix, pattern string) string {
	if prefix == "" {
		return pattern
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(pattern, "/")
}
