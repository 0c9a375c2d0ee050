package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/auth"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/pkg/token"
)

// memBackend implements session.Store and auth.UserStore in memory, with a
// username uniqueness constraint like a real database.
type memBackend struct {
	mu         sync.Mutex
	sessions   map[string]session.Session
	users      map[string]auth.UserRecord // by id
	byUsername map[string]string          // username -> id
}

func newMemBackend() *memBackend {
	return &memBackend{
		sessions:   make(map[string]session.Session),
		users:      make(map[string]auth.UserRecord),
		byUsername: make(map[string]string),
	}
}

func (b *memBackend) InsertSession(_ context.Context, sess session.Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions[sess.ID] = sess
	return nil
}

func (b *memBackend) FindSessionWithUser(_ context.Context, sessionID string) (session.Session, session.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	sess, ok := b.sessions[sessionID]
	if !ok {
		return session.Session{}, session.User{}, session.ErrNotFound
	}
	rec := b.users[sess.UserID]
	return sess, session.User{ID: rec.ID, Username: rec.Username}, nil
}

func (b *memBackend) UpdateSessionExpiry(_ context.Context, sessionID string, expiresAt time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	sess, ok := b.sessions[sessionID]
	if !ok {
		return session.ErrNotFound
	}
	sess.ExpiresAt = expiresAt
	b.sessions[sessionID] = sess
	return nil
}

func (b *memBackend) DeleteSession(_ context.Context, sessionID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.sessions[sessionID]; !ok {
		return session.ErrNotFound
	}
	delete(b.sessions, sessionID)
	return nil
}

func (b *memBackend) FindByUsername(_ context.Context, username string) (auth.UserRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.byUsername[username]
	if !ok {
		return auth.UserRecord{}, auth.ErrUserNotFound
	}
	return b.users[id], nil
}

func (b *memBackend) InsertUser(_ context.Context, user auth.UserRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, taken := b.byUsername[user.Username]; taken {
		return auth.ErrUsernameTaken
	}
	b.users[user.ID] = user
	b.byUsername[user.Username] = user.ID
	return nil
}

func (b *memBackend) sessionCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

func newFlow(t *testing.T) (*auth.Service, *session.Manager, *memBackend) {
	t.Helper()

	backend := newMemBackend()
	mgr, err := session.NewManager(backend,
		session.WithDuration(30*24*time.Hour),
		session.WithRenewalThreshold(15*24*time.Hour),
	)
	require.NoError(t, err)

	svc, err := auth.NewService(backend, mgr, auth.WithPasswordParams(fastParams()))
	require.NoError(t, err)

	return svc, mgr, backend
}

func TestAuthFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("register login logout lifecycle", func(t *testing.T) {
		t.Parallel()
		svc, _, backend := newFlow(t)

		// Register alice: user created, session issued 30d out.
		res, err := svc.Register(ctx, "alice", "secret1")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), res.ExpiresAt, 5*time.Second)
		assert.Equal(t, 1, backend.sessionCount())

		// Registering the same username again fails even with a different
		// password.
		_, err = svc.Register(ctx, "alice", "secret2")
		assert.ErrorIs(t, err, auth.ErrUsernameTaken)

		// Wrong password on login.
		_, err = svc.Login(ctx, "alice", "wrongpass")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

		// Correct login mints a second session with a distinct token.
		res2, err := svc.Login(ctx, "alice", "secret1")
		require.NoError(t, err)
		assert.NotEqual(t, res.Token, res2.Token)
		assert.Equal(t, 2, backend.sessionCount())

		// Me resolves the fresh token.
		_, user, err := svc.Me(ctx, res2.Token)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		// Logout removes exactly that session; repeating it is a no-op.
		require.NoError(t, svc.Logout(ctx, res2.Token))
		assert.Equal(t, 1, backend.sessionCount())
		require.NoError(t, svc.Logout(ctx, res2.Token))
		assert.Equal(t, 1, backend.sessionCount())

		// The logged-out token no longer authenticates.
		_, _, err = svc.Me(ctx, res2.Token)
		assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
	})

	t.Run("expired session is reaped on access", func(t *testing.T) {
		t.Parallel()
		svc, _, backend := newFlow(t)

		res, err := svc.Register(ctx, "bob", "secret1")
		require.NoError(t, err)

		// Force the session into the past.
		id := token.DeriveSessionID(res.Token)
		backend.mu.Lock()
		sess := backend.sessions[id]
		sess.ExpiresAt = time.Now().Add(-time.Minute)
		backend.sessions[id] = sess
		backend.mu.Unlock()

		_, _, err = svc.Me(ctx, res.Token)
		assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
		assert.Equal(t, 0, backend.sessionCount(), "expired row must be deleted on access")
	})

	t.Run("session near expiry is renewed by me", func(t *testing.T) {
		t.Parallel()
		svc, _, backend := newFlow(t)

		res, err := svc.Register(ctx, "carol", "secret1")
		require.NoError(t, err)

		// 10 days left under a 15 day threshold: next validation renews.
		id := token.DeriveSessionID(res.Token)
		backend.mu.Lock()
		sess := backend.sessions[id]
		sess.ExpiresAt = time.Now().Add(10 * 24 * time.Hour)
		backend.sessions[id] = sess
		backend.mu.Unlock()

		renewed, _, err := svc.Me(ctx, res.Token)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), renewed.ExpiresAt, 5*time.Second)

		// The renewal was persisted.
		backend.mu.Lock()
		stored := backend.sessions[id]
		backend.mu.Unlock()
		assert.Equal(t, renewed.ExpiresAt, stored.ExpiresAt)
	})

	t.Run("concurrent registration of one username has a single winner", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newFlow(t)

		const attempts = 8
		var wg sync.WaitGroup
		errs := make([]error, attempts)
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = svc.Register(ctx, "dave", "secret1")
			}()
		}
		wg.Wait()

		var won, taken int
		for _, err := range errs {
			switch {
			case err == nil:
				won++
			case errors.Is(err, auth.ErrUsernameTaken):
				taken++
			}
		}
		assert.Equal(t, 1, won)
		assert.Equal(t, attempts-1, taken)
	})

	t.Run("raw token never reaches the store", func(t *testing.T) {
		t.Parallel()
		svc, _, backend := newFlow(t)

		res, err := svc.Register(ctx, "erin", "secret1")
		require.NoError(t, err)

		backend.mu.Lock()
		defer backend.mu.Unlock()
		for id := range backend.sessions {
			assert.NotEqual(t, res.Token, id)
			assert.Equal(t, token.DeriveSessionID(res.Token), id)
		}
	})
}
