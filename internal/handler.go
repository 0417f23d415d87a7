package internal

// HandlerFunc processes a matched request. The handler reads the request and
// writes the response through the typed context; a returned error aborts the
// request and is routed to the application's error handler.
type HandlerFunc[T any] func(ctx Context[T]) error

// Handler registers a group of routes on a router. Implement it on feature
// types (a guestbook, an admin area) and pass them to the application so each
// feature owns its own route table.
type Handler[T any] interface {
	Routes(r Router[T])
}

// ErrorHandler renders an error into the response. It receives the same typed
// context the failing handler had, with the response reset to a clean slate.
// Returning a non-nil error falls back to the default error rendering.
type ErrorHandler[T any] func(ctx Context[T], err error) error
