package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// IDLength is the length of a session id: 256 random bits, hex-encoded.
const IDLength = 64

// Session is one user session with a typed payload. The zero value is not
// usable; sessions come from [New] (fresh) or a [Store] (persisted), and the
// Restore constructor covers custom store implementations.
//
// The flags drive persistence: a store's Save only touches disk when the
// session is new or modified, and reading the payload never sets either flag.
type Session[T any] struct {
	id       string
	payload  *T
	isNew    bool
	modified bool
	deleted  bool
}

// New creates a session with a freshly minted id. The session starts new and
// modified, so the next Save persists it even if the payload is never touched.
// Failure to draw randomness is the only error and is not recoverable.
func New[T any]() (*Session[T], error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}
	return &Session[T]{id: id, isNew: true, modified: true}, nil
}

// Restore rebuilds a persisted session from its stored parts. All flags start
// clear. Stores call this after decoding; application code normally has no
// reason to.
func Restore[T any](id string, payload *T) *Session[T] {
	return &Session[T]{id: id, payload: payload}
}

// ID returns the session identifier: 64 lowercase hex characters.
func (s *Session[T]) ID() string {
	return s.id
}

// Data returns the payload, materializing the zero value of T on first
// access. Materialization alone does not mark the session modified; call
// [Session.MarkModified] after changing anything through the returned
// pointer.
func (s *Session[T]) Data() *T {
	if s.payload == nil {
		s.payload = new(T)
	}
	return s.payload
}

// Replace swaps the whole payload and marks the session modified.
func (s *Session[T]) Replace(v T) {
	s.payload = &v
	s.modified = true
}

// MarkModified flags the session for persistence on the next Save.
func (s *Session[T]) MarkModified() {
	s.modified = true
}

// MarkDeleted flags the session for removal on the next Save. It also marks
// the session modified so the removal actually happens.
func (s *Session[T]) MarkDeleted() {
	s.deleted = true
	s.modified = true
}

// IsNew reports whether the session was created this request and never saved.
func (s *Session[T]) IsNew() bool {
	return s.isNew
}

// IsModified reports whether the session has unsaved changes.
func (s *Session[T]) IsModified() bool {
	return s.modified
}

// IsDeleted reports whether the session is flagged for removal.
func (s *Session[T]) IsDeleted() bool {
	return s.deleted
}

// ClearNew marks the session as persisted. Stores call this after a
// successful Save.
func (s *Session[T]) ClearNew() {
	s.isNew = false
}

// ClearModified marks the session as clean. Stores call this after a
// successful Save.
func (s *Session[T]) ClearModified() {
	s.modified = false
}

// ValidID reports whether id has the exact shape of a minted session id.
// Stores use it to refuse identifiers that could never name a session, which
// also keeps attacker-supplied cookie values out of file paths and queries.
func ValidID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func newID() (string, error) {
	b := make([]byte, IDLength/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
