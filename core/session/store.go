package session

import (
	"context"
	"time"
)

// Store defines the persistence interface the manager consumes. Any backend
// works as long as each call is atomic with respect to itself; the manager
// never requires multi-row transactions and never holds locks across calls.
//
// Implementations report a missing session as ErrNotFound and must only be
// given derived session IDs, never raw tokens.
type Store interface {
	// InsertSession persists a new session row.
	InsertSession(ctx context.Context, sess Session) error

	// FindSessionWithUser returns the session and its owning user in one
	// round trip. Returns ErrNotFound when no row matches.
	FindSessionWithUser(ctx context.Context, sessionID string) (Session, User, error)

	// UpdateSessionExpiry extends a session's expiry.
	UpdateSessionExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error

	// DeleteSession removes a session row. Deleting a missing row returns
	// ErrNotFound; callers that need idempotency ignore it.
	DeleteSession(ctx context.Context, sessionID string) error
}
