// Package redis opens Redis connections for the session store.
//
// Defaults are sized for a one-process-per-request deployment: a tiny pool,
// short timeouts, and a quick retry, because a request stuck waiting on a
// backend is a request the visitor has already given up on.
//
//	client, err := redis.Open(ctx, "redis://localhost:6379/0")
//	if err != nil {
//		return err
//	}
//	store := session.NewRedisStore[Visitor](client)
//
// Long-running embeddings can raise the pool and retry settings through
// options.
package redis
