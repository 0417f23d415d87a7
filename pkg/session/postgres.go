package session

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migration errors.
var (
	ErrSetDialect      = errors.New("session: set migration dialect")
	ErrApplyMigrations = errors.New("session: apply migrations")
)

// PostgresStore persists sessions as rows keyed by id. Payloads are stored as
// codec-encoded bytes, so the table schema never changes when the payload
// type does.
type PostgresStore[T any] struct {
	pool  *pgxpool.Pool
	codec Codec
	table string
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*postgresOptions)

type postgresOptions struct {
	codec Codec
	table string
}

// WithPostgresCodec sets the payload codec. Defaults to JSONCodec.
func WithPostgresCodec(c Codec) PostgresOption {
	return func(o *postgresOptions) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithTable sets the table name for a pre-provisioned schema. Defaults to
// "sessions", the table Migrate creates.
func WithTable(table string) PostgresOption {
	return func(o *postgresOptions) {
		if table != "" {
			o.table = table
		}
	}
}

// NewPostgresStore creates a Postgres-backed store on an existing pool. The
// pool's lifecycle belongs to the caller. Run Migrate once before first use,
// or provision the schema yourself and point WithTable at it.
func NewPostgresStore[T any](pool *pgxpool.Pool, opts ...PostgresOption) *PostgresStore[T] {
	o := postgresOptions{
		codec: JSONCodec{},
		table: "sessions",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &PostgresStore[T]{
		pool:  pool,
		codec: o.codec,
		table: o.table,
	}
}

// Migrate applies the embedded schema migrations for the default table.
func (s *PostgresStore[T]) Migrate(ctx context.Context, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// goose needs database/sql; this wrapper shares the pool's connections,
	// so it must not be closed here.
	db := stdlib.OpenDBFromPool(s.pool)

	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLogger{log})
	goose.SetTableName("sessions_goose_version")

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrSetDialect, err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}
	return nil
}

// Load retrieves the session row for id. A missing row, like an id that
// could never name a session, yields (nil, nil).
func (s *PostgresStore[T]) Load(ctx context.Context, id string) (*Session[T], error) {
	if !ValidID(id) {
		return nil, nil
	}

	var data []byte
	query := fmt.Sprintf(`SELECT data FROM %s WHERE id = $1`, s.ident())
	err := s.pool.QueryRow(ctx, query, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session row: %w", err)
	}

	payload := new(T)
	if err := s.codec.Unmarshal(data, payload); err != nil {
		return nil, errors.Join(ErrCorrupted, err)
	}
	return Restore(id, payload), nil
}

// Save upserts, or for deleted sessions removes, the session row. Clean
// sessions are left alone.
func (s *PostgresStore[T]) Save(ctx context.Context, sess *Session[T]) error {
	if sess == nil || (!sess.IsModified() && !sess.IsNew()) {
		return nil
	}
	if !ValidID(sess.ID()) {
		return errors.Join(ErrInvalidID, fmt.Errorf("id %q", sess.ID()))
	}

	if sess.IsDeleted() {
		query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.ident())
		if _, err := s.pool.Exec(ctx, query, sess.ID()); err != nil {
			return fmt.Errorf("delete session row: %w", err)
		}
		sess.ClearModified()
		sess.ClearNew()
		return nil
	}

	data, err := s.codec.Marshal(sess.Data())
	if err != nil {
		return fmt.Errorf("encode session payload: %w", err)
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, data) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		s.ident())
	if _, err := s.pool.Exec(ctx, query, sess.ID(), data); err != nil {
		return fmt.Errorf("write session row: %w", err)
	}

	sess.ClearModified()
	sess.ClearNew()
	return nil
}

// Prune deletes rows untouched for longer than maxAge and reports how many
// went.
func (s *PostgresStore[T]) Prune(ctx context.Context, maxAge time.Duration) (int, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE updated_at < $1`, s.ident())
	tag, err := s.pool.Exec(ctx, query, time.Now().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("prune session rows: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (s *PostgresStore[T]) ident() string {
	return pgx.Identifier{s.table}.Sanitize()
}

type gooseLogger struct {
	log *slog.Logger
}

func (g *gooseLogger) Printf(format string, args ...any) {
	g.log.Info(fmt.Sprintf(format, args...))
}

func (g *gooseLogger) Fatalf(format string, args ...any) {
	// Error level only: goose returns the failure as an error anyway, and
	// exiting here would skip cleanup in the caller.
	g.log.Error(fmt.Sprintf(format, args...))
}

var _ Store[any] = (*PostgresStore[any])(nil)
var _ Prunable = (*PostgresStore[any])(nil)
