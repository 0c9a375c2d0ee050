package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/authkit/core/auth"
	"github.com/dmitrymomot/authkit/core/session"
)

// querier is the subset of pool operations the store needs. It is satisfied
// by *pgxpool.Pool, pgx.Tx, and pgxmock pools alike.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store persists users and sessions in PostgreSQL. It implements both
// session.Store and auth.UserStore so a single instance backs the whole
// authentication stack.
type Store struct {
	pool querier
}

// NewStore creates a PostgreSQL-backed store over the given pool.
func NewStore(pool querier) *Store {
	return &Store{pool: pool}
}

// db returns the transaction attached to ctx when present, so store calls
// participate in the caller's transaction, and the pool otherwise.
func (s *Store) db(ctx context.Context) querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return s.pool
}

func (s *Store) InsertSession(ctx context.Context, sess session.Session) error {
	_, err := s.db(ctx).Exec(ctx,
		`INSERT INTO sessions (id, user_id, expires_at) VALUES ($1, $2, $3)`,
		sess.ID, sess.UserID, sess.ExpiresAt)
	return err
}

func (s *Store) FindSessionWithUser(ctx context.Context, sessionID string) (session.Session, session.User, error) {
	var (
		sess session.Session
		user session.User
	)
	err := s.db(ctx).QueryRow(ctx,
		`SELECT s.id, s.user_id, s.expires_at, u.username
		 FROM sessions s
		 JOIN users u ON u.id = s.user_id
		 WHERE s.id = $1`,
		sessionID).Scan(&sess.ID, &sess.UserID, &sess.ExpiresAt, &user.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return session.Session{}, session.User{}, session.ErrNotFound
	}
	if err != nil {
		return session.Session{}, session.User{}, err
	}
	user.ID = sess.UserID
	return sess, user, nil
}

func (s *Store) UpdateSessionExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error {
	tag, err := s.db(ctx).Exec(ctx,
		`UPDATE sessions SET expires_at = $2 WHERE id = $1`,
		sessionID, expiresAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return session.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	tag, err := s.db(ctx).Exec(ctx,
		`DELETE FROM sessions WHERE id = $1`, sessionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return session.ErrNotFound
	}
	return nil
}

// DeleteExpiredSessions removes sessions whose expiry has passed and returns
// the number of rows removed. The engine reaps expired sessions lazily on
// read; this helper suits a periodic cleanup job for sessions nobody
// revisits.
func (s *Store) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	tag, err := s.db(ctx).Exec(ctx,
		`DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// FindUserByID resolves a user by primary key. Session stores that keep only
// the user id, such as the Redis adapter, use it to hydrate the user on
// session reads.
func (s *Store) FindUserByID(ctx context.Context, id string) (session.User, error) {
	var user session.User
	err := s.db(ctx).QueryRow(ctx,
		`SELECT id, username FROM users WHERE id = $1`,
		id).Scan(&user.ID, &user.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return session.User{}, auth.ErrUserNotFound
	}
	if err != nil {
		return session.User{}, err
	}
	return user, nil
}

func (s *Store) FindByUsername(ctx context.Context, username string) (auth.UserRecord, error) {
	var rec auth.UserRecord
	err := s.db(ctx).QueryRow(ctx,
		`SELECT id, username, password_hash FROM users WHERE username = $1`,
		username).Scan(&rec.ID, &rec.Username, &rec.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return auth.UserRecord{}, auth.ErrUserNotFound
	}
	if err != nil {
		return auth.UserRecord{}, err
	}
	return rec, nil
}

// InsertUser adds a user record. The unique index on username is the
// arbiter for concurrent registrations: the loser surfaces as
// auth.ErrUsernameTaken.
func (s *Store) InsertUser(ctx context.Context, user auth.UserRecord) error {
	_, err := s.db(ctx).Exec(ctx,
		`INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3)`,
		user.ID, user.Username, user.PasswordHash)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return auth.ErrUsernameTaken
	}
	return err
}
