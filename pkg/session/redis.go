package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists sessions in Redis under <prefix><id>. Keys carry a TTL
// so abandoned sessions expire without any pruning.
type RedisStore[T any] struct {
	client redis.UniversalClient
	codec  Codec
	prefix string
	ttl    time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*redisOptions)

type redisOptions struct {
	codec  Codec
	prefix string
	ttl    time.Duration
}

// WithRedisCodec sets the payload codec. Defaults to JSONCodec.
func WithRedisCodec(c Codec) RedisOption {
	return func(o *redisOptions) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithKeyPrefix sets the key prefix. Defaults to "runway:session:".
func WithKeyPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		o.prefix = prefix
	}
}

// WithTTL sets the key lifetime. Each save restarts it. Defaults to 24h;
// zero or negative keeps keys forever.
func WithTTL(ttl time.Duration) RedisOption {
	return func(o *redisOptions) {
		o.ttl = ttl
	}
}

// NewRedisStore creates a Redis-backed store. The client's lifecycle belongs
// to the caller.
func NewRedisStore[T any](client redis.UniversalClient, opts ...RedisOption) *RedisStore[T] {
	o := redisOptions{
		codec:  JSONCodec{},
		prefix: "runway:session:",
		ttl:    24 * time.Hour,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &RedisStore[T]{
		client: client,
		codec:  o.codec,
		prefix: o.prefix,
		ttl:    o.ttl,
	}
}

// Load retrieves the session stored under id. Missing keys, like ids that
// could never name a session, yield (nil, nil).
func (s *RedisStore[T]) Load(ctx context.Context, id string) (*Session[T], error) {
	if !ValidID(id) {
		return nil, nil
	}

	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session key: %w", err)
	}

	payload := new(T)
	if err := s.codec.Unmarshal(data, payload); err != nil {
		return nil, errors.Join(ErrCorrupted, err)
	}
	return Restore(id, payload), nil
}

// Save writes, or for deleted sessions removes, the session key. Clean
// sessions are left alone.
func (s *RedisStore[T]) Save(ctx context.Context, sess *Session[T]) error {
	if sess == nil || (!sess.IsModified() && !sess.IsNew()) {
		return nil
	}
	if !ValidID(sess.ID()) {
		return errors.Join(ErrInvalidID, fmt.Errorf("id %q", sess.ID()))
	}

	if sess.IsDeleted() {
		if err := s.client.Del(ctx, s.key(sess.ID())).Err(); err != nil {
			return fmt.Errorf("delete session key: %w", err)
		}
		sess.ClearModified()
		sess.ClearNew()
		return nil
	}

	data, err := s.codec.Marshal(sess.Data())
	if err != nil {
		return fmt.Errorf("encode session payload: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sess.ID()), data, max(s.ttl, 0)).Err(); err != nil {
		return fmt.Errorf("write session key: %w", err)
	}

	sess.ClearModified()
	sess.ClearNew()
	return nil
}

func (s *RedisStore[T]) key(id string) string {
	return s.prefix + id
}

var _ Store[any] = (*RedisStore[any])(nil)
