package web_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/runway/pkg/web"
)

func TestResponse(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		res := web.NewResponse()
		require.Equal(t, 200, res.Status())
		require.False(t, res.StatusSet())
		require.False(t, res.Written())
		require.Zero(t, res.Len())
	})

	t.Run("status and body", func(t *testing.T) {
		t.Parallel()

		res := web.NewResponse()
		res.SetStatus(201)
		res.SetContentType("text/plain; charset=utf-8")
		_, err := res.WriteString("created")
		require.NoError(t, err)

		require.Equal(t, 201, res.Status())
		require.True(t, res.StatusSet())
		require.True(t, res.Written())
		require.Equal(t, "created", string(res.Bytes()))
		require.Equal(t, 7, res.Len())
	})

	t.Run("body write alone counts as written", func(t *testing.T) {
		t.Parallel()

		res := web.NewResponse()
		_, err := res.Write([]byte("x"))
		require.NoError(t, err)

		require.True(t, res.Written())
		require.Equal(t, 200, res.Status())
	})

	t.Run("reset clears everything", func(t *testing.T) {
		t.Parallel()

		res := web.NewResponse()
		res.SetStatus(500)
		res.SetContentType("text/html")
		res.Header.Set("X-Test", "boom")
		_, err := res.WriteString("half a page")
		require.NoError(t, err)

		res.Reset()

		require.False(t, res.Written())
		require.Equal(t, 200, res.Status())
		require.Empty(t, res.ContentType())
		require.Empty(t, res.Header.Get("X-Test"))
		require.Zero(t, res.Len())
	})

	t.Run("cookies accumulate without dedup", func(t *testing.T) {
		t.Parallel()

		res := web.NewResponse()
		res.AddCookie(&web.Cookie{Name: "a", Value: "1"})
		res.AddCookie(&web.Cookie{Name: "a", Value: "2"})

		require.Equal(t, []string{"a=1", "a=2"}, res.Header.Values("Set-Cookie"))
	})

	t.Run("add cookie on zero value response", func(t *testing.T) {
		t.Parallel()

		var res web.Response
		res.AddCookie(&web.Cookie{Name: "a", Value: "1"})

		require.Equal(t, "a=1", res.Header.Get("Set-Cookie"))
	})
}
