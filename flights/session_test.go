package flights_test

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/runway"
	"github.com/dmitrymomot/runway/flights"
	"github.com/dmitrymomot/runway/pkg/session"
	"github.com/dmitrymomot/runway/pkg/web"
)

func TestLoadSession(t *testing.T) {
	t.Parallel()

	countViews := func(c runway.Context[account]) error {
		sess, err := c.Session()
		if err != nil {
			return err
		}
		sess.Data().Views++
		sess.MarkModified()
		return c.String(http.StatusOK, "ok")
	}

	t.Run("handlers behind it use Session directly", func(t *testing.T) {
		t.Parallel()

		store := session.NewFileStore[account](t.TempDir())
		app := runway.New[account](
			runway.WithSession(store),
			runway.WithPreFlights(flights.LoadSession[account]()),
		)
		app.GET("/", countViews)

		res := serveOnce(t, app, http.MethodGet, "/")

		require.Equal(t, http.StatusOK, res.Status())
		require.NotEmpty(t, setCookie(t, res, "__sid"))
	})

	t.Run("session access without the flight fails the request", func(t *testing.T) {
		t.Parallel()

		store := session.NewFileStore[account](t.TempDir())
		app := runway.New[account](
			runway.WithSession(store),
		)
		app.GET("/", countViews)

		res := serveOnce(t, app, http.MethodGet, "/")

		require.Equal(t, http.StatusInternalServerError, res.Status())
		require.Empty(t, setCookie(t, res, "__sid"))
	})

	t.Run("corrupt session record fails the request", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		id := strings.Repeat("ab", 32)
		require.NoError(t, os.WriteFile(filepath.Join(dir, id+".json"), []byte("{"), 0o600))

		app := runway.New[account](
			runway.WithSession(session.NewFileStore[account](dir)),
			runway.WithPreFlights(flights.LoadSession[account]()),
		)
		app.GET("/", countViews)

		res := serveOnce(t, app, http.MethodGet, "/", web.WithCookie("__sid", id))

		require.Equal(t, http.StatusInternalServerError, res.Status())
	})
}
