package web_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/runway/pkg/web"
)

func TestHeader(t *testing.T) {
	t.Parallel()

	t.Run("lookups are case-insensitive", func(t *testing.T) {
		t.Parallel()

		h := make(web.Header)
		h.Set("content-type", "text/html")

		require.Equal(t, "text/html", h.Get("Content-Type"))
		require.Equal(t, "text/html", h.Get("CONTENT-TYPE"))
	})

	t.Run("add keeps existing values", func(t *testing.T) {
		t.Parallel()

		h := make(web.Header)
		h.Add("Set-Cookie", "a=1")
		h.Add("Set-Cookie", "b=2")

		require.Equal(t, []string{"a=1", "b=2"}, h.Values("Set-Cookie"))
		require.Equal(t, "a=1", h.Get("Set-Cookie"))
	})

	t.Run("set replaces all values", func(t *testing.T) {
		t.Parallel()

		h := make(web.Header)
		h.Add("X-Test", "one")
		h.Add("X-Test", "two")
		h.Set("X-Test", "three")

		require.Equal(t, []string{"three"}, h.Values("X-Test"))
	})

	t.Run("del removes the key", func(t *testing.T) {
		t.Parallel()

		h := make(web.Header)
		h.Set("X-Test", "value")
		h.Del("x-test")

		require.Empty(t, h.Get("X-Test"))
	})

	t.Run("nil header is safe to read", func(t *testing.T) {
		t.Parallel()

		var h web.Header
		require.Empty(t, h.Get("Anything"))
		require.Nil(t, h.Values("Anything"))
		require.Nil(t, h.Clone())
	})

	t.Run("clone is independent", func(t *testing.T) {
		t.Parallel()

		h := make(web.Header)
		h.Add("X-Test", "one")

		c := h.Clone()
		c.Add("X-Test", "two")

		require.Equal(t, []string{"one"}, h.Values("X-Test"))
		require.Equal(t, []string{"one", "two"}, c.Values("X-Test"))
	})
}
