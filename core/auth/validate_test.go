package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authkit/core/auth"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	valid := []string{"abc", "alice", "user_1", "a-b-c", "0-9", strings.Repeat("a", 31)}
	for _, username := range valid {
		assert.True(t, auth.ValidateUsername(username), "expected %q to be valid", username)
	}

	invalid := []string{
		"",
		"ab",                       // too short
		strings.Repeat("a", 32),    // too long
		"Alice",                    // uppercase
		"a b",                      // space
		"user@example.com",         // symbol
		"ümlaut",                   // non-ascii
		"user\nname",               // control char
		strings.Repeat("a", 3) + ".", // dot
	}
	for _, username := range invalid {
		assert.False(t, auth.ValidateUsername(username), "expected %q to be invalid", username)
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.True(t, auth.ValidatePassword("secret"))
	assert.True(t, auth.ValidatePassword(strings.Repeat("p", 255)))

	assert.False(t, auth.ValidatePassword(""))
	assert.False(t, auth.ValidatePassword("12345"))
	assert.False(t, auth.ValidatePassword(strings.Repeat("p", 256)))
}
