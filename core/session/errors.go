package session

import "errors"

var (
	// ErrNotFound is returned when no live session matches a token or ID.
	// Expired sessions report ErrNotFound as well: expiry is a normal
	// outcome, not a store failure.
	ErrNotFound = errors.New("session: not found")
	// ErrStore wraps failures of the underlying store (timeouts, lost
	// connections). Callers should treat it as opaque.
	ErrStore = errors.New("session: store failure")
	// ErrInvalidConfig is returned when manager options are inconsistent,
	// e.g. a renewal threshold not shorter than the session duration.
	ErrInvalidConfig = errors.New("session: invalid configuration")
)
