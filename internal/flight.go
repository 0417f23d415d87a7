package internal

// Outcome is the result of a flight. It makes the control flow explicit:
// a flight either lets the request continue or rejects it after writing
// its own response.
type Outcome int

const (
	// Continue passes control to the next flight or the handler.
	Continue Outcome = iota

	// Rejected stops the current phase. A rejecting flight must have
	// written the response it wants the client to see (a 401, a redirect);
	// the chain itself writes nothing on rejection. A pre-flight rejection
	// also skips the handler and every post-flight. A post-flight rejection
	// skips the remaining post-flights but does not undo anything the
	// handler already did.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Flight runs before or after a handler. Flights registered as pre-flights
// run in registration order strictly before the handler; post-flights run in
// registration order strictly after it, and only if the handler ran. A
// returned error is a hard failure and aborts the request through the
// application's error path.
type Flight[T any] func(ctx Context[T]) (Outcome, error)

// runFlights executes flights in order until one rejects or fails.
// It returns Rejected as soon as any flight rejects; the remaining
// flights in the slice do not run.
func runFlights[T any](ctx Context[T], flights []Flight[T]) (Outcome, error) {
	for _, f := range flights {
		outcome, err := f(ctx)
		if err != nil {
			return outcome, err
		}
		if outcome == Rejected {
			return Rejected, nil
		}
	}
	return Continue, nil
}
