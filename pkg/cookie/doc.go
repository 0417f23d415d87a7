// Package cookie provides cookie management with optional signing and
// encryption on top of the framework's request and response carriers.
//
// The Manager handles plain, signed, and encrypted cookies, plus flash
// messages. Secrets are optional; encrypted and signed operations return
// [ErrNoSecret] without one.
//
// # Basic Usage
//
// Plain cookies work without a secret:
//
//	m := cookie.New()
//	m.Set(res, "theme", "dark", 86400)
//	value, err := m.Get(req, "theme")
//	if err != nil {
//		// handle error
//	}
//
// # With Secret
//
// Enable signing and encryption with a 32+ byte secret:
//
//	m := cookie.New(
//		cookie.WithSecret("your-32+-byte-secret-key-here!!"),
//		cookie.WithSecure(true),
//		cookie.WithHTTPOnly(true),
//	)
//
// Signed cookies detect tampering with HMAC-SHA256:
//
//	err := m.SetSigned(res, "uid", userID, 86400)
//	value, err := m.GetSigned(req, "uid")
//
// Encrypted cookies use AES-256-GCM:
//
//	err := m.SetEncrypted(res, "prefs", userPrefs, 86400)
//	value, err := m.GetEncrypted(req, "prefs")
//
// # Flash Messages
//
// Flash messages are encrypted, single-read values that delete themselves
// after reading. They are useful for status banners after redirects:
//
//	// Set a flash message
//	m.SetFlash(res, "msg", map[string]string{"type": "success", "text": "Saved!"})
//
//	// Read and delete on the next request
//	var msg map[string]string
//	err := m.Flash(res, req, "msg", &msg)
//
// # Configuration
//
// Use options to configure default cookie attributes:
//
//	m := cookie.New(
//		cookie.WithPath("/app"),
//		cookie.WithDomain("example.com"),
//		cookie.WithSameSite(web.SameSiteStrict),
//	)
package cookie
