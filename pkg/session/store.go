package session

import (
	"context"
	"time"
)

// Store persists sessions. Implementations are expected to be used from a
// single goroutine per session; the framework's one-request-at-a-time model
// never shares a session between concurrent writers.
type Store[T any] interface {
	// Load retrieves a session by id. An id with no stored record yields
	// (nil, nil): absence is a normal outcome, not an error. Records that
	// exist but cannot be read fail with the underlying error; records that
	// cannot be decoded fail with an error wrapping ErrCorrupted. Loaded
	// sessions have all flags clear.
	Load(ctx context.Context, id string) (*Session[T], error)

	// Save persists the session. It is a no-op unless the session is new or
	// modified. A session flagged deleted has its record removed instead
	// (removing an absent record is fine). Otherwise the current payload, or
	// the zero value when the payload was never materialized, overwrites the
	// record in full. On success both the new and modified flags are
	// cleared.
	Save(ctx context.Context, s *Session[T]) error
}

// Prunable is implemented by stores that can discard expired records on
// demand. The redis backend is absent on purpose: its keys carry a TTL and
// expire server-side.
type Prunable interface {
	Prune(ctx context.Context, maxAge time.Duration) (int, error)
}
