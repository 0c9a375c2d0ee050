package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
)

const (
	// sessionTokenBytes gives 144 bits of entropy, enough to keep the
	// birthday bound above 2^144 possible tokens.
	sessionTokenBytes = 18

	// userIDBytes gives 120 bits of entropy, 24 base32 characters.
	userIDBytes = 15
)

// lowerBase32 is the RFC 4648 alphabet in lowercase, unpadded.
var lowerBase32 = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// GenerateSessionToken returns a URL-safe random session token.
// The token is handed to the client verbatim and must never be persisted
// server-side; persist DeriveSessionID(token) instead.
func GenerateSessionToken() string {
	b := make([]byte, sessionTokenBytes)
	// crypto/rand.Read never fails as of Go 1.24.
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

// GenerateUserID returns a random lowercase base32 user identifier.
func GenerateUserID() string {
	b := make([]byte, userIDBytes)
	rand.Read(b)
	return lowerBase32.EncodeToString(b)
}

// DeriveSessionID returns the lowercase-hex SHA-256 digest of the token.
// This is the only form of the token the session store ever sees.
func DeriveSessionID(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
