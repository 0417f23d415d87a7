package internal

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/runway/pkg/session"
	"github.com/dmitrymomot/runway/pkg/web"
)

const (
	defaultSessionCookie = "__sid"
	defaultSessionMaxAge = 86400 // one day, in seconds
)

// sessionConfig holds the session cookie attributes. Everything is set
// through options at construction; nothing is compiled in.
type sessionConfig struct {
	cookieName string
	maxAge     int
	path       string
	domain     string
	secure     bool
	httpOnly   bool
	sameSite   web.SameSite
}

// SessionOption configures session handling on the app.
type SessionOption func(*sessionConfig)

// WithSessionCookieName overrides the session cookie name. Default "__sid".
func WithSessionCookieName(name string) SessionOption {
	return func(c *sessionConfig) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// WithSessionMaxAge sets the session cookie Max-Age in seconds.
// Default 86400 (one day).
func WithSessionMaxAge(seconds int) SessionOption {
	return func(c *sessionConfig) {
		if seconds > 0 {
			c.maxAge = seconds
		}
	}
}

// WithSessionPath sets the session cookie Path attribute. Default "/".
func WithSessionPath(path string) SessionOption {
	return func(c *sessionConfig) {
		if path != "" {
			c.path = path
		}
	}
}

// WithSessionDomain sets the session cookie Domain attribute. Unset by
// default, scoping the cookie to the exact request host.
func WithSessionDomain(domain string) SessionOption {
	return func(c *sessionConfig) {
		c.domain = domain
	}
}

// WithSessionSecure toggles the session cookie Secure attribute.
// Default false; enable behind TLS.
func WithSessionSecure(secure bool) SessionOption {
	return func(c *sessionConfig) {
		c.secure = secure
	}
}

// WithSessionHTTPOnly toggles the session cookie HttpOnly attribute.
// Default true.
func WithSessionHTTPOnly(httpOnly bool) SessionOption {
	return func(c *sessionConfig) {
		c.httpOnly = httpOnly
	}
}

// WithSessionSameSite sets the session cookie SameSite attribute.
// Default Lax.
func WithSessionSameSite(ss web.SameSite) SessionOption {
	return func(c *sessionConfig) {
		c.sameSite = ss
	}
}

// sessionManager loads sessions from the request cookie and persists them at
// the end of the request. It owns the cookie that carries the session id; the
// stores know nothing about cookies and the contexts nothing about
// persistence.
type sessionManager[T any] struct {
	store session.Store[T]
	cfg   sessionConfig
}

func newSessionManager[T any](store session.Store[T], opts ...SessionOption) *sessionManager[T] {
	cfg := sessionConfig{
		cookieName: defaultSessionCookie,
		maxAge:     defaultSessionMaxAge,
		path:       "/",
		httpOnly:   true,
		sameSite:   web.SameSiteLax,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &sessionManager[T]{store: store, cfg: cfg}
}

// LoadOrCreate returns the session named by the request's session cookie, or
// a fresh one when the cookie is absent or no stored session answers to it.
// Store failures other than "nothing stored" are hard errors.
func (m *sessionManager[T]) LoadOrCreate(ctx context.Context, req *web.Request) (*session.Session[T], error) {
	if id, ok := req.Cookie(m.cfg.cookieName); ok {
		sess, err := m.store.Load(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load session: %w", err)
		}
		if sess != nil {
			return sess, nil
		}
	}
	sess, err := session.New[T]()
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Finalize persists the session and emits the session cookie when one is
// owed. It runs once, at the end of a successfully answered request; the
// hard-error path never saves session state.
//
// New sessions get the cookie exactly once, on the request that created
// them; established sessions never re-emit it. Deleted sessions have their
// stored record removed and the cookie expired.
func (m *sessionManager[T]) Finalize(ctx context.Context, sess *session.Session[T], res *web.Response) error {
	if sess == nil {
		return nil
	}

	if sess.IsDeleted() {
		if err := m.store.Save(ctx, sess); err != nil {
			return fmt.Errorf("remove session: %w", err)
		}
		res.AddCookie(m.cookie("", -1))
		return nil
	}

	// Save clears the new flag, so capture it first.
	wasNew := sess.IsNew()
	if err := m.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if wasNew {
		res.AddCookie(m.cookie(sess.ID(), m.cfg.maxAge))
	}
	return nil
}

func (m *sessionManager[T]) cookie(value string, maxAge int) *web.Cookie {
	return &web.Cookie{
		Name:     m.cfg.cookieName,
		Value:    value,
		Path:     m.cfg.path,
		Domain:   m.cfg.domain,
		MaxAge:   maxAge,
		Secure:   m.cfg.secure,
		HttpOnly: m.cfg.httpOnly,
		SameSite: m.cfg.sameSite,
	}
}
