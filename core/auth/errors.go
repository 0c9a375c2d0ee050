package auth

import "errors"

var (
	// ErrInvalidInput is returned when username or password fails shape
	// validation. The user must correct the input; retrying is pointless.
	ErrInvalidInput = errors.New("auth: invalid username or password format")
	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("auth: incorrect username or password")
	// ErrUsernameTaken is returned when registering an already-used username.
	ErrUsernameTaken = errors.New("auth: username already taken")
	// ErrUserNotFound is the UserStore contract for a missing user. The
	// service translates it to ErrInvalidCredentials before it crosses the
	// boundary.
	ErrUserNotFound = errors.New("auth: user not found")
	// ErrNotAuthenticated is returned by Me when the token resolves to no
	// live session. Transports should clear the stored token on it.
	ErrNotAuthenticated = errors.New("auth: not authenticated")
	// ErrStore wraps user store failures. Opaque to callers.
	ErrStore = errors.New("auth: store failure")
	// ErrHashing wraps credential hashing failures (malformed stored hash,
	// resource exhaustion). Fatal for the request, not the process.
	ErrHashing = errors.New("auth: password hashing failure")
)
