package flights

import "github.com/dmitrymomot/runway/internal"

// LoadSession returns a pre-flight that materializes the session before the
// handler runs: it loads the session named by the request cookie or creates a
// fresh one. Handlers and flights behind it can call Session() without
// initialization ceremony.
//
// A load failure (corrupt record, unreachable store) is a hard error that
// fails the request.
func LoadSession[T any]() internal.Flight[T] {
	return func(c internal.Context[T]) (internal.Outcome, error) {
		if err := c.InitSession(); err != nil {
			return internal.Continue, err
		}
		return internal.Continue, nil
	}
}
