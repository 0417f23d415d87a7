package flights_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/runway"
	"github.com/dmitrymomot/runway/pkg/web"
)

// account is the session payload used across the flight tests.
type account struct {
	UserID string `json:"user_id"`
	Views  int    `json:"views"`
}

// serveOnce runs one request through the app and returns the buffered response.
func serveOnce(t *testing.T, app *runway.App[account], method, target string, opts ...web.RequestOption) *web.Response {
	t.Helper()

	req, err := web.NewRequest(method, target, opts...)
	require.NoError(t, err)

	res := web.NewResponse()
	require.NoError(t, app.Handle(context.Background(), req, res))
	return res
}

// setCookie returns the value of the named cookie from the response's
// Set-Cookie headers, or "" when none was emitted.
func setCookie(t *testing.T, res *web.Response, name string) string {
	t.Helper()

	for _, line := range res.Header.Values("Set-Cookie") {
		if rest, ok := strings.CutPrefix(line, name+"="); ok {
			value, _, _ := strings.Cut(rest, ";")
			return value
		}
	}
	return ""
}
