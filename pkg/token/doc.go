// Package token generates opaque session tokens and public user identifiers,
// and derives the storable session identifier from a token.
//
// A session token is the only secret the client holds; the server persists
// nothing but its SHA-256 digest. DeriveSessionID is the bridge between the
// two worlds: it is pure and one-way, so a leaked sessions table cannot be
// turned back into usable tokens.
//
//	tok := token.GenerateSessionToken() // hand to the client
//	id := token.DeriveSessionID(tok)    // hand to the store
//
// User identifiers are lowercase base32 so they are safe in URLs and
// case-insensitive databases without escaping.
package token
