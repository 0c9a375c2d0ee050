package sessiontransport

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/authkit/core/cookie"
)

// DefaultCookieName is the session cookie name used when none is configured.
const DefaultCookieName = "auth-session"

// Cookie carries the session token in a signed HTTP cookie. It is the only
// place the plaintext token touches the wire.
type Cookie struct {
	cookies *cookie.Manager
	name    string
	secure  bool
}

// NewCookie creates a cookie-based token carrier. secure should be true in
// production so the cookie is only sent over HTTPS.
func NewCookie(m *cookie.Manager, name string, secure bool) *Cookie {
	if name == "" {
		name = DefaultCookieName
	}
	return &Cookie{cookies: m, name: name, secure: secure}
}

// Token extracts the session token from the request cookie.
func (c *Cookie) Token(r *http.Request) (string, error) {
	tok, err := c.cookies.GetSigned(r, c.name)
	switch {
	case errors.Is(err, cookie.ErrCookieNotFound):
		return "", ErrNoToken
	case err != nil:
		return "", errors.Join(ErrInvalidToken, err)
	}
	return tok, nil
}

// Set stores the token in the session cookie with both Expires and Max-Age
// matching the session expiry.
func (c *Cookie) Set(w http.ResponseWriter, token string, expiresAt time.Time) error {
	return c.cookies.SetSigned(w, c.name, token,
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithExpires(expiresAt),
		cookie.WithSecure(c.secure),
	)
}

// Clear deletes the session cookie. Safe to call whether or not a session
// existed.
func (c *Cookie) Clear(w http.ResponseWriter) {
	c.cookies.Delete(w, c.name)
}
