// Package db opens PostgreSQL connection pools for the session store.
//
// As with the redis helper, defaults suit a one-process-per-request
// deployment: two connections at most, no warm idle pool, and a short retry
// before giving up.
//
//	pool, err := db.Open(ctx, "postgres://app@localhost:5432/app")
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	store := session.NewPostgresStore[Visitor](pool)
package db
