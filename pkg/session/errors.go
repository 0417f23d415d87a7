package session

import "errors"

// Session errors.
var (
	// ErrNotConfigured is returned when session functionality is used but no
	// store was configured on the app.
	ErrNotConfigured = errors.New("session: store not configured")

	// ErrNotInitialized is returned when a handler asks for the session
	// before anything loaded or created one for the request.
	ErrNotInitialized = errors.New("session: not initialized")

	// ErrCorrupted is returned when a stored session exists but its payload
	// cannot be decoded.
	ErrCorrupted = errors.New("session: corrupted data")

	// ErrInvalidID is returned when an id not shaped like a minted session
	// id reaches an operation that requires one.
	ErrInvalidID = errors.New("session: invalid id")
)
