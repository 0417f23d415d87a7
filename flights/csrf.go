package flights

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/runway/internal"
	"github.com/dmitrymomot/runway/pkg/cookie"
)

// csrfTokenKey is the context key for the CSRF token.
type csrfTokenKey struct{}

// CSRFConfig configures the CSRF flight.
type CSRFConfig struct {
	CookieName   string        // Signed cookie carrying the token, default "__csrf"
	FormField    string        // Form field checked on mutating requests, default "_csrf"
	HeaderName   string        // Header checked when the form field is empty, default "X-CSRF-Token"
	CookieMaxAge int           // Token cookie lifetime in seconds, default 86400
	Generator    func() string // Token generator, default uuid.NewString
}

// CSRFOption configures CSRFConfig.
type CSRFOption func(*CSRFConfig)

// WithCSRFCookieName sets the signed cookie name.
func WithCSRFCookieName(name string) CSRFOption {
	return func(cfg *CSRFConfig) {
		cfg.CookieName = name
	}
}

// WithCSRFFormField sets the form field holding the submitted token.
func WithCSRFFormField(field string) CSRFOption {
	return func(cfg *CSRFConfig) {
		cfg.FormField = field
	}
}

// WithCSRFHeaderName sets the header holding the submitted token.
func WithCSRFHeaderName(header string) CSRFOption {
	return func(cfg *CSRFConfig) {
		cfg.HeaderName = header
	}
}

// WithCSRFCookieMaxAge sets the token cookie lifetime in seconds.
func WithCSRFCookieMaxAge(seconds int) CSRFOption {
	return func(cfg *CSRFConfig) {
		if seconds > 0 {
			cfg.CookieMaxAge = seconds
		}
	}
}

// WithCSRFGenerator sets a custom token generator function.
func WithCSRFGenerator(gen func() string) CSRFOption {
	return func(cfg *CSRFConfig) {
		cfg.Generator = gen
	}
}

// CSRF returns a pre-flight implementing double-submit forgery protection.
// Safe methods (GET, HEAD, OPTIONS, TRACE) are given a token in a signed
// cookie; mutating methods must echo it in the form field or header, and are
// rejected with 403 otherwise. The comparison is constant-time.
//
// A cookie secret must be configured; without one every request fails hard
// rather than running unprotected.
func CSRF[T any](opts ...CSRFOption) internal.Flight[T] {
	cfg := &CSRFConfig{
		CookieName:   "__csrf",
		FormField:    "_csrf",
		HeaderName:   "X-CSRF-Token",
		CookieMaxAge: 86400,
		Generator:    uuid.NewString,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(c internal.Context[T]) (internal.Outcome, error) {
		token, err := c.CookieSigned(cfg.CookieName)
		if errors.Is(err, cookie.ErrNoSecret) {
			return internal.Continue, err
		}

		switch c.Request().Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
			// Mint a token when none is present. A cookie with a bad
			// signature counts as absent and heals itself here.
			if err != nil || token == "" {
				token = cfg.Generator()
				if err := c.SetCookieSigned(cfg.CookieName, token, cfg.CookieMaxAge); err != nil {
					return internal.Continue, err
				}
			}
		default:
			if err != nil || token == "" {
				return rejectCSRF(c)
			}
			submitted := c.Form(cfg.FormField)
			if submitted == "" {
				submitted = c.Header(cfg.HeaderName)
			}
			if subtle.ConstantTimeCompare([]byte(token), []byte(submitted)) != 1 {
				return rejectCSRF(c)
			}
		}

		c.Set(csrfTokenKey{}, token)
		return internal.Continue, nil
	}
}

func rejectCSRF[T any](c internal.Context[T]) (internal.Outcome, error) {
	if err := c.String(http.StatusForbidden, "Invalid CSRF token"); err != nil {
		return internal.Continue, err
	}
	return internal.Rejected, nil
}

// TokenFromContext extracts the CSRF token planted by the CSRF flight, for
// embedding in forms. Returns an empty string if the flight did not run.
func TokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(csrfTokenKey{}).(string); ok {
		return v
	}
	return ""
}
