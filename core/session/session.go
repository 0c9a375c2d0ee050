package session

import "time"

// Session is proof of authentication. ID is the SHA-256 digest of the client
// token; the plaintext token is never part of this struct because it is
// never persisted.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// IsExpired reports whether the session's expiry has passed.
func (s Session) IsExpired() bool {
	return !time.Now().Before(s.ExpiresAt)
}

// User is the identity a validated session resolves to. It deliberately
// excludes the password hash, which must not cross the store boundary.
type User struct {
	ID       string
	Username string
}
