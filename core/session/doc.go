// Package session implements the server side of token-based sessions:
// creation, validation with renew-on-read, and invalidation against a
// pluggable persistence store.
//
// # Token vs identifier
//
// The client holds an opaque random token. The store only ever sees the
// SHA-256 digest of that token (the session ID), so a copy of the sessions
// table alone is never enough to hijack a session. Derivation lives in
// pkg/token; this package consumes it on every operation.
//
// # Lifecycle
//
// A session moves through absent → active → (renewed)* → expired or
// invalidated. Expiry is reaped lazily: an expired row is deleted the next
// time its token is validated, not by a background sweeper. Validation of a
// session inside the renewal threshold extends its expiry to a full duration
// from now and persists the new expiry in the same logical operation.
//
// The renewal write is best-effort. If it fails the validation result is
// still returned as valid — the current check already proved the session
// live — and the failure is logged, never surfaced to the caller.
//
// # Usage
//
//	store := pg.NewStore(pool) // any session.Store implementation
//	mgr, err := session.NewManager(store,
//		session.WithDuration(30*24*time.Hour),
//		session.WithRenewalThreshold(15*24*time.Hour),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err := mgr.Create(ctx, token.GenerateSessionToken(), userID)
//	sess, user, err := mgr.Validate(ctx, clientToken)
//	err = mgr.Invalidate(ctx, sess.ID)
//
// The manager is stateless between calls and safe for concurrent use. Two
// concurrent validations of the same token near the renewal threshold may
// both write a renewal; the writes target near-identical expiries and the
// last one wins.
package session
