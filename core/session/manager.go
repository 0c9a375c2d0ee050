package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/pkg/token"
)

// Manager orchestrates the session lifecycle against a Store. It is
// stateless between calls; all shared state lives in the store.
type Manager struct {
	store            Store
	duration         time.Duration
	renewalThreshold time.Duration
	log              *slog.Logger
}

// NewManager creates a session manager. Defaults: 30 day duration, 15 day
// renewal threshold. The renewal threshold must be shorter than the
// duration, otherwise every validation would renew.
func NewManager(store Store, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: nil store", ErrInvalidConfig)
	}

	m := &Manager{
		store:            store,
		duration:         DefaultDuration,
		renewalThreshold: DefaultRenewalThreshold,
		log:              slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.duration <= 0 {
		return nil, fmt.Errorf("%w: non-positive duration %s", ErrInvalidConfig, m.duration)
	}
	if m.renewalThreshold <= 0 || m.renewalThreshold >= m.duration {
		return nil, fmt.Errorf("%w: renewal threshold %s must be positive and shorter than duration %s",
			ErrInvalidConfig, m.renewalThreshold, m.duration)
	}

	return m, nil
}

// Create derives the session ID from token, persists a session expiring a
// full duration from now and returns it. The token itself is not stored.
func (m *Manager) Create(ctx context.Context, tok, userID string) (Session, error) {
	sess := Session{
		ID:        token.DeriveSessionID(tok),
		UserID:    userID,
		ExpiresAt: time.Now().Add(m.duration),
	}

	if err := m.store.InsertSession(ctx, sess); err != nil {
		return Session{}, errors.Join(ErrStore, err)
	}
	return sess, nil
}

// Validate resolves a client token to its session and user.
//
// Outcomes:
//   - no matching session: ErrNotFound
//   - expired session: the row is deleted (lazy reaping) and ErrNotFound
//     is returned
//   - live session: returned; if it is inside the renewal threshold its
//     expiry is extended to now+duration and persisted best-effort
func (m *Manager) Validate(ctx context.Context, tok string) (Session, User, error) {
	id := token.DeriveSessionID(tok)

	sess, user, err := m.store.FindSessionWithUser(ctx, id)
	switch {
	case errors.Is(err, ErrNotFound):
		return Session{}, User{}, ErrNotFound
	case err != nil:
		return Session{}, User{}, errors.Join(ErrStore, err)
	}

	now := time.Now()

	if !now.Before(sess.ExpiresAt) {
		if err := m.store.DeleteSession(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
			m.log.WarnContext(ctx, "failed to reap expired session",
				logger.Component("session"),
				logger.SessionID(id),
				logger.Error(err))
		}
		return Session{}, User{}, ErrNotFound
	}

	if !now.Before(sess.ExpiresAt.Add(-m.renewalThreshold)) {
		sess.ExpiresAt = now.Add(m.duration)
		// Best-effort: the current check already proved the session live,
		// so a failed renewal write must not fail the validation.
		if err := m.store.UpdateSessionExpiry(ctx, id, sess.ExpiresAt); err != nil {
			m.log.WarnContext(ctx, "session renewal write failed",
				logger.Component("session"),
				logger.SessionID(id),
				logger.Error(err))
		}
	}

	return sess, user, nil
}

// Invalidate deletes a session by ID. Invalidating a session that does not
// exist is not an error.
func (m *Manager) Invalidate(ctx context.Context, sessionID string) error {
	if err := m.store.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, ErrNotFound) {
		return errors.Join(ErrStore, err)
	}
	return nil
}

// Duration returns the configured session lifetime.
func (m *Manager) Duration() time.Duration {
	return m.duration
}
