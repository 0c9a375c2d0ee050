package sessiontransport

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/authkit/core/auth"
)

// statusFor maps auth sentinel errors to HTTP status codes. Unknown
// errors collapse to 500 so store and hashing internals never leak.
func statusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrUsernameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the response body text for an auth error. Opaque
// failures get a generic message.
func publicMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		return "invalid username or password format"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "incorrect username or password"
	case errors.Is(err, auth.ErrUsernameTaken):
		return "username already taken"
	case errors.Is(err, auth.ErrNotAuthenticated):
		return "not authenticated"
	default:
		return "internal error"
	}
}
