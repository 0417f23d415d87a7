package flights

import (
	"net/http"

	"github.com/dmitrymomot/runway/internal"
	"github.com/dmitrymomot/runway/pkg/session"
)

// AuthConfig configures the RequireAuth flight.
type AuthConfig struct {
	// RedirectURL is where rejected requests are sent, default "/login".
	// Empty disables the redirect; requests are answered 401 instead.
	RedirectURL string
}

// AuthOption configures AuthConfig.
type AuthOption func(*AuthConfig)

// WithAuthRedirect sets the location rejected requests are redirected to.
// An empty URL switches the flight to a plain 401 response.
func WithAuthRedirect(url string) AuthOption {
	return func(cfg *AuthConfig) {
		cfg.RedirectURL = url
	}
}

// RequireAuth returns a pre-flight that gates routes behind an authorization
// predicate. The session is initialized first, so the predicate always sees
// it. Requests that fail the predicate are answered with a redirect (or 401)
// and rejected; the handler and post-flights never run.
//
// What "authorized" means is the application's call. The substrate ships no
// account scheme; a typical predicate checks a field of the session payload.
func RequireAuth[T any](authorized func(c internal.Context[T], s *session.Session[T]) bool, opts ...AuthOption) internal.Flight[T] {
	cfg := &AuthConfig{
		RedirectURL: "/login",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(c internal.Context[T]) (internal.Outcome, error) {
		if err := c.InitSession(); err != nil {
			return internal.Continue, err
		}
		sess, err := c.Session()
		if err != nil {
			return internal.Continue, err
		}

		if authorized(c, sess) {
			return internal.Continue, nil
		}

		if cfg.RedirectURL != "" {
			if err := c.Redirect(http.StatusSeeOther, cfg.RedirectURL); err != nil {
				return internal.Continue, err
			}
			return internal.Rejected, nil
		}
		if err := c.String(http.StatusUnauthorized, "Unauthorized"); err != nil {
			return internal.Continue, err
		}
		return internal.Rejected, nil
	}
}
