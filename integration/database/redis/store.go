package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authkit/core/auth"
	"github.com/dmitrymomot/authkit/core/session"
)

const sessionKeyPrefix = "session:"

// client is the subset of go-redis commands the session store uses. It is
// satisfied by *redis.Client and by test fakes.
type client interface {
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	ExpireAt(ctx context.Context, key string, tm time.Time) *redis.BoolCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// UserFinder resolves the user attached to a session. Unknown ids must
// surface as auth.ErrUserNotFound. The PostgreSQL Store satisfies this, so
// the usual deployment keeps users durable in Postgres while sessions live
// in Redis with native TTL-based expiry.
type UserFinder interface {
	FindUserByID(ctx context.Context, id string) (session.User, error)
}

// SessionStore implements session.Store over Redis hashes. Each session is a
// hash keyed by its digest with a key TTL matching the session expiry, so
// expired sessions vanish without an application-side reaper.
type SessionStore struct {
	client client
	users  UserFinder
}

// NewSessionStore creates a Redis-backed session store. Users are hydrated
// on reads through the given finder.
func NewSessionStore(c client, users UserFinder) *SessionStore {
	return &SessionStore{client: c, users: users}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *SessionStore) InsertSession(ctx context.Context, sess session.Session) error {
	key := sessionKey(sess.ID)
	if err := s.client.HSet(ctx, key,
		"user_id", sess.UserID,
		"expires_at", sess.ExpiresAt.UTC().Format(time.RFC3339Nano),
	).Err(); err != nil {
		return err
	}
	return s.client.ExpireAt(ctx, key, sess.ExpiresAt).Err()
}

func (s *SessionStore) FindSessionWithUser(ctx context.Context, sessionID string) (session.Session, session.User, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return session.Session{}, session.User{}, err
	}
	if len(fields) == 0 {
		return session.Session{}, session.User{}, session.ErrNotFound
	}

	expiresAt, err := time.Parse(time.RFC3339Nano, fields["expires_at"])
	if err != nil {
		return session.Session{}, session.User{}, errors.Join(ErrCorruptSessionRecord, err)
	}
	sess := session.Session{
		ID:        sessionID,
		UserID:    fields["user_id"],
		ExpiresAt: expiresAt,
	}

	user, err := s.users.FindUserByID(ctx, sess.UserID)
	if errors.Is(err, auth.ErrUserNotFound) {
		// The user is gone; the session is orphaned and unusable.
		return session.Session{}, session.User{}, session.ErrNotFound
	}
	if err != nil {
		return session.Session{}, session.User{}, err
	}

	return sess, user, nil
}

func (s *SessionStore) UpdateSessionExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error {
	key := sessionKey(sessionID)
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return session.ErrNotFound
	}
	if err := s.client.HSet(ctx, key,
		"expires_at", expiresAt.UTC().Format(time.RFC3339Nano),
	).Err(); err != nil {
		return err
	}
	return s.client.ExpireAt(ctx, key, expiresAt).Err()
}

func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	n, err := s.client.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return session.ErrNotFound
	}
	return nil
}
