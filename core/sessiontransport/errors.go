package sessiontransport

import "errors"

var (
	// ErrNoToken is returned when no session cookie is present in the request.
	ErrNoToken = errors.New("sessiontransport: no token")

	// ErrInvalidToken is returned when the cookie exists but its signature
	// does not verify.
	ErrInvalidToken = errors.New("sessiontransport: invalid token")
)
