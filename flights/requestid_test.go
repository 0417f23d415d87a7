package flights_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/runway"
	"github.com/dmitrymomot/runway/flights"
	"github.com/dmitrymomot/runway/pkg/web"
)

func newRequestIDApp(opts ...flights.RequestIDOption) *runway.App[account] {
	app := runway.New[account](
		runway.WithPreFlights(flights.RequestID[account](opts...)),
	)
	app.GET("/", func(c runway.Context[account]) error {
		return c.String(http.StatusOK, flights.RequestIDFromContext(c))
	})
	return app
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates new request ID when not present", func(t *testing.T) {
		t.Parallel()

		res := serveOnce(t, newRequestIDApp(), http.MethodGet, "/")

		require.NotEmpty(t, res.Header.Get("X-Request-ID"))
		require.Len(t, res.Header.Get("X-Request-ID"), 26)
	})

	t.Run("uses existing request ID from header", func(t *testing.T) {
		t.Parallel()

		existingID := "existing-request-id-123"
		res := serveOnce(t, newRequestIDApp(), http.MethodGet, "/",
			web.WithHeader("X-Request-ID", existingID))

		require.Equal(t, existingID, res.Header.Get("X-Request-ID"))
	})

	t.Run("handler sees the stored ID", func(t *testing.T) {
		t.Parallel()

		res := serveOnce(t, newRequestIDApp(), http.MethodGet, "/")

		require.NotEmpty(t, res.Bytes())
		require.Equal(t, res.Header.Get("X-Request-ID"), string(res.Bytes()))
	})

	t.Run("custom generator and response header", func(t *testing.T) {
		t.Parallel()

		app := newRequestIDApp(
			flights.WithRequestIDGenerator(func() string { return "fixed-id" }),
			flights.WithRequestIDResponseHeader("X-Trace-ID"),
		)
		res := serveOnce(t, app, http.MethodGet, "/")

		require.Equal(t, "fixed-id", res.Header.Get("X-Trace-ID"))
		require.Empty(t, res.Header.Get("X-Request-ID"))
	})

	t.Run("custom header priority", func(t *testing.T) {
		t.Parallel()

		app := newRequestIDApp(
			flights.WithRequestIDHeaders("X-Correlation-ID"),
		)
		res := serveOnce(t, app, http.MethodGet, "/",
			web.WithHeader("X-Request-ID", "ignored"),
			web.WithHeader("X-Correlation-ID", "corr-42"))

		require.Equal(t, "corr-42", res.Header.Get("X-Request-ID"))
	})
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	t.Run("returns attribute when request ID present", func(t *testing.T) {
		t.Parallel()

		var (
			attr slog.Attr
			ok   bool
		)
		app := runway.New[account](
			runway.WithPreFlights(flights.RequestID[account]()),
		)
		app.GET("/", func(c runway.Context[account]) error {
			attr, ok = flights.RequestIDExtractor()(c.Context())
			return c.NoContent(http.StatusNoContent)
		})

		serveOnce(t, app, http.MethodGet, "/")

		require.True(t, ok)
		require.Equal(t, "request_id", attr.Key)
		require.NotEmpty(t, attr.Value.String())
	})

	t.Run("returns false without the flight", func(t *testing.T) {
		t.Parallel()

		_, ok := flights.RequestIDExtractor()(context.Background())
		require.False(t, ok)
	})
}
