package token_test

import (
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/token"
)

func TestGenerateSessionToken(t *testing.T) {
	t.Parallel()

	t.Run("encodes 18 random bytes as raw base64url", func(t *testing.T) {
		t.Parallel()

		tok := token.GenerateSessionToken()

		raw, err := base64.RawURLEncoding.DecodeString(tok)
		require.NoError(t, err)
		assert.Len(t, raw, 18)
	})

	t.Run("tokens do not repeat", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]struct{}, 1000)
		for range 1000 {
			tok := token.GenerateSessionToken()
			_, dup := seen[tok]
			require.False(t, dup, "duplicate token %q", tok)
			seen[tok] = struct{}{}
		}
	})
}

func TestGenerateUserID(t *testing.T) {
	t.Parallel()

	t.Run("is lowercase base32 without padding", func(t *testing.T) {
		t.Parallel()

		id := token.GenerateUserID()

		assert.Len(t, id, 24)
		assert.Regexp(t, regexp.MustCompile(`^[a-z2-7]+$`), id)
	})

	t.Run("ids do not repeat", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]struct{}, 1000)
		for range 1000 {
			id := token.GenerateUserID()
			_, dup := seen[id]
			require.False(t, dup, "duplicate id %q", id)
			seen[id] = struct{}{}
		}
	})
}

func TestDeriveSessionID(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		tok := token.GenerateSessionToken()
		assert.Equal(t, token.DeriveSessionID(tok), token.DeriveSessionID(tok))
	})

	t.Run("matches known sha256 digest", func(t *testing.T) {
		t.Parallel()

		// sha256("abc")
		assert.Equal(t,
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
			token.DeriveSessionID("abc"))
	})

	t.Run("different tokens produce different ids", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t,
			token.DeriveSessionID(token.GenerateSessionToken()),
			token.DeriveSessionID(token.GenerateSessionToken()))
	})

	t.Run("never exposes the token", func(t *testing.T) {
		t.Parallel()

		tok := token.GenerateSessionToken()
		id := token.DeriveSessionID(tok)

		assert.NotContains(t, id, tok)
		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), id)
	})
}
