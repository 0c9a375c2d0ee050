// Package cookie manages HTTP cookies with secure defaults and optional
// HMAC signing.
//
// The manager applies its defaults (path "/", HttpOnly, SameSite=Lax) to
// every cookie and lets call sites override per cookie via functional
// options. Signed cookies protect secret-bearing values, such as session
// tokens, against client-side tampering:
//
//	m, err := cookie.New([]string{secret})
//	err = m.SetSigned(w, name, token,
//		cookie.WithExpires(expiresAt),
//		cookie.WithSecure(true))
//	value, err := m.GetSigned(r, name)
//
// Multiple secrets enable key rotation: signing always uses the first
// secret, verification tries them all.
package cookie
