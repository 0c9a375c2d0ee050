package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/pkg/token"
)

// memStore is a minimal thread-safe in-memory store for concurrency tests.
type memStore struct {
	mu       sync.Mutex
	sessions map[string]session.Session
	users    map[string]session.User
	updates  int
}

func newMemStore() *memStore {
	return &memStore{
		sessions: make(map[string]session.Session),
		users:    make(map[string]session.User),
	}
}

func (s *memStore) InsertSession(_ context.Context, sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *memStore) FindSessionWithUser(_ context.Context, sessionID string) (session.Session, session.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return session.Session{}, session.User{}, session.ErrNotFound
	}
	return sess, s.users[sess.UserID], nil
}

func (s *memStore) UpdateSessionExpiry(_ context.Context, sessionID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return session.ErrNotFound
	}
	sess.ExpiresAt = expiresAt
	s.sessions[sessionID] = sess
	s.updates++
	return nil
}

func (s *memStore) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return session.ErrNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// Concurrent validations of the same token near the renewal threshold may
// all attempt the renewal write; last write wins and every caller still gets
// a valid result.
func TestConcurrentValidationNearThreshold(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.users["user-1"] = session.User{ID: "user-1", Username: "alice"}

	tok := token.GenerateSessionToken()
	id := token.DeriveSessionID(tok)
	store.sessions[id] = session.Session{
		ID:        id,
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(10 * 24 * time.Hour), // inside the 15d threshold
	}

	mgr, err := session.NewManager(store,
		session.WithDuration(30*24*time.Hour),
		session.WithRenewalThreshold(15*24*time.Hour),
	)
	require.NoError(t, err)

	const goroutines = 32
	var wg sync.WaitGroup
	errs := make([]error, goroutines)

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, errs[i] = mgr.Validate(context.Background(), tok)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "goroutine %d", i)
	}

	final, _, err := store.FindSessionWithUser(context.Background(), id)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), final.ExpiresAt, 5*time.Second)
	assert.GreaterOrEqual(t, store.updates, 1)
}
