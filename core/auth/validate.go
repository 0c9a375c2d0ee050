package auth

import "regexp"

const (
	minUsernameLen = 3
	maxUsernameLen = 31
	minPasswordLen = 6
	maxPasswordLen = 255
)

var usernameRe = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ValidateUsername reports whether username is 3-31 characters of lowercase
// alphanumerics, underscore or hyphen. Pure predicate, no I/O.
func ValidateUsername(username string) bool {
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return false
	}
	return usernameRe.MatchString(username)
}

// ValidatePassword reports whether password is 6-255 bytes. The floor is
// deliberately weak; stronger policy belongs to the caller.
func ValidatePassword(password string) bool {
	return len(password) >= minPasswordLen && len(password) <= maxPasswordLen
}
