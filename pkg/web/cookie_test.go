package web_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/runway/pkg/web"
)

func TestCookieString(t *testing.T) {
	t.Parallel()

	t.Run("session cookie attributes", func(t *testing.T) {
		t.Parallel()

		c := &web.Cookie{
			Name:     "__sid",
			Value:    "abc123",
			Path:     "/",
			MaxAge:   86400,
			HttpOnly: true,
			SameSite: web.SameSiteLax,
		}

		require.Equal(t, "__sid=abc123; Path=/; HttpOnly; SameSite=Lax; Max-Age=86400", c.String())
	})

	t.Run("bare name value pair", func(t *testing.T) {
		t.Parallel()

		c := &web.Cookie{Name: "theme", Value: "dark"}
		require.Equal(t, "theme=dark", c.String())
	})

	t.Run("negative max age expires immediately", func(t *testing.T) {
		t.Parallel()

		c := &web.Cookie{Name: "__sid", Value: "", Path: "/", MaxAge: -1}
		require.Equal(t, "__sid=; Path=/; Max-Age=0", c.String())
	})

	t.Run("all attributes", func(t *testing.T) {
		t.Parallel()

		c := &web.Cookie{
			Name:     "id",
			Value:    "v",
			Path:     "/app",
			Domain:   "example.com",
			MaxAge:   60,
			Secure:   true,
			HttpOnly: true,
			SameSite: web.SameSiteStrict,
		}

		require.Equal(t, "id=v; Path=/app; Domain=example.com; HttpOnly; Secure; SameSite=Strict; Max-Age=60", c.String())
	})
}

func TestParseCookies(t *testing.T) {
	t.Parallel()

	t.Run("multiple pairs", func(t *testing.T) {
		t.Parallel()

		cookies := web.ParseCookies("__sid=abc; theme=dark; lang=en")
		require.Equal(t, map[string]string{
			"__sid": "abc",
			"theme": "dark",
			"lang":  "en",
		}, cookies)
	})

	t.Run("skips malformed pairs", func(t *testing.T) {
		t.Parallel()

		cookies := web.ParseCookies("valid=1; notapair; =noname; ")
		require.Equal(t, map[string]string{"valid": "1"}, cookies)
	})

	t.Run("empty header", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, web.ParseCookies(""))
	})

	t.Run("quoted values are unwrapped", func(t *testing.T) {
		t.Parallel()

		cookies := web.ParseCookies(`token="abc=="`)
		require.Equal(t, "abc==", cookies["token"])
	})

	t.Run("value may contain equals sign", func(t *testing.T) {
		t.Parallel()

		cookies := web.ParseCookies("data=a=b=c")
		require.Equal(t, "a=b=c", cookies["data"])
	})
}
