package web

import (
	"strconv"
	"strings"
)

// SameSite is the SameSite cookie attribute.
type SameSite int

const (
	// SameSiteDefault omits the attribute entirely.
	SameSiteDefault SameSite = iota
	SameSiteLax
	SameSiteStrict
	SameSiteNone
)

func (s SameSite) String() string {
	switch s {
	case SameSiteLax:
		return "Lax"
	case SameSiteStrict:
		return "Strict"
	case SameSiteNone:
		return "None"
	default:
		return ""
	}
}

// Cookie describes a single Set-Cookie header. Values are emitted verbatim,
// so anything outside the cookie-safe character set must be encoded by the
// caller before it gets here.
type Cookie struct {
	Name     string
	Value    string
	Path     string
	Domain   string
	MaxAge   int // seconds; 0 omits the attribute, negative expires immediately
	Secure   bool
	HttpOnly bool
	SameSite SameSite
}

// String serializes the cookie as a Set-Cookie header value.
func (c *Cookie) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(c.Value)
	if c.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.Path)
	}
	if c.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(c.Domain)
	}
	if c.HttpOnly {
		b.WriteString("; HttpOnly")
	}
	if c.Secure {
		b.WriteString("; Secure")
	}
	if ss := c.SameSite.String(); ss != "" {
		b.WriteString("; SameSite=")
		b.WriteString(ss)
	}
	switch {
	case c.MaxAge > 0:
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(c.MaxAge))
	case c.MaxAge < 0:
		b.WriteString("; Max-Age=0")
	}
	return b.String()
}

// ParseCookies parses a request Cookie header ("a=1; b=2") into a name to
// value map. Malformed pairs are skipped; the last duplicate wins.
func ParseCookies(header string) map[string]string {
	cookies := make(map[string]string)
	for pair := range strings.SplitSeq(header, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			continue
		}
		cookies[name] = strings.Trim(value, `"`)
	}
	return cookies
}
