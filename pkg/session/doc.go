// Package session provides typed server-side sessions with pluggable
// persistence.
//
// A [Session] is generic over its payload type, so the application decides
// what a session carries and gets compile-time checked access to it. The
// payload is materialized lazily: [Session.Data] allocates the zero value on
// first use, and nothing is written anywhere until the session is marked
// modified and saved.
//
// # Lifecycle
//
//	type Account struct {
//		UserID int      `json:"user_id"`
//		Errors []string `json:"errors,omitempty"`
//	}
//
//	sess, err := session.New[Account]()   // fresh id, new + modified
//	sess.Data().UserID = 9876
//	sess.MarkModified()
//
//	store := session.NewFileStore[Account]("/var/lib/app/sessions")
//	err = store.Save(ctx, sess)           // writes sessions/<id>.json
//
//	same, err := store.Load(ctx, sess.ID())
//
// Session ids are 256 bits from crypto/rand, hex-encoded: 64 lowercase hex
// characters. Loading an id with no stored record returns (nil, nil); absence
// is not an error. Corrupted records fail hard with [ErrCorrupted].
//
// # Stores
//
// [FileStore] keeps one human-readable file per session and is the default
// backend. [RedisStore] and [PostgresStore] offer the same [Store] contract
// for deployments that outlive a single host. All three serialize payloads
// through a [Codec]; JSON is the default, YAML is available.
//
// Expired records are reaped by [FileStore.Prune] and [PostgresStore.Prune],
// either on demand or on a schedule via [Pruner]. Redis expires keys by TTL
// on its own.
package session
