package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/pkg/password"
	"github.com/dmitrymomot/authkit/pkg/token"
)

// SessionManager is the slice of the session engine the auth service needs.
// Satisfied by *session.Manager.
type SessionManager interface {
	Create(ctx context.Context, token, userID string) (session.Session, error)
	Validate(ctx context.Context, token string) (session.Session, session.User, error)
	Invalidate(ctx context.Context, sessionID string) error
}

// Result is the success payload of Login and Register. Token is the only
// plaintext copy of the session secret; hand it to the transport and forget
// it.
type Result struct {
	Token     string
	ExpiresAt time.Time
	User      session.User
}

// Service implements the auth workflows on top of a user store and session
// manager. Safe for concurrent use.
type Service struct {
	users      UserStore
	sessions   SessionManager
	hashParams password.Params
	log        *slog.Logger

	// dummyHash is verified against when the username does not exist, so a
	// login attempt costs the same hashing work either way.
	dummyHash string
}

// NewService creates an auth service. Default hashing parameters are
// password.DefaultParams.
func NewService(users UserStore, sessions SessionManager, opts ...Option) (*Service, error) {
	if users == nil {
		return nil, errors.New("auth: nil user store")
	}
	if sessions == nil {
		return nil, errors.New("auth: nil session manager")
	}

	s := &Service{
		users:      users,
		sessions:   sessions,
		hashParams: password.DefaultParams(),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// The throwaway password never needs to match anything; hashing it with
	// the live parameters keeps dummy verification cost realistic.
	dummy, err := password.Hash(token.GenerateSessionToken(), s.hashParams)
	if err != nil {
		return nil, errors.Join(ErrHashing, err)
	}
	s.dummyHash = dummy

	return s, nil
}

// Login authenticates a username/password pair and mints a fresh session.
func (s *Service) Login(ctx context.Context, username, plaintext string) (Result, error) {
	if !ValidateUsername(username) || !ValidatePassword(plaintext) {
		return Result{}, ErrInvalidInput
	}

	rec, err := s.users.FindByUsername(ctx, username)
	exists := true
	hash := rec.PasswordHash
	switch {
	case errors.Is(err, ErrUserNotFound):
		exists = false
		hash = s.dummyHash
	case err != nil:
		return Result{}, errors.Join(ErrStore, err)
	}

	ok, err := password.Verify(hash, plaintext)
	if err != nil {
		if !exists {
			return Result{}, ErrInvalidCredentials
		}
		return Result{}, errors.Join(ErrHashing, err)
	}
	if !exists || !ok {
		return Result{}, ErrInvalidCredentials
	}

	return s.issueSession(ctx, session.User{ID: rec.ID, Username: rec.Username})
}

// Register creates a user and logs them in. A concurrent registration with
// the same username resolves at the storage uniqueness constraint: exactly
// one caller succeeds, the rest get ErrUsernameTaken.
func (s *Service) Register(ctx context.Context, username, plaintext string) (Result, error) {
	if !ValidateUsername(username) || !ValidatePassword(plaintext) {
		return Result{}, ErrInvalidInput
	}

	hash, err := password.Hash(plaintext, s.hashParams)
	if err != nil {
		return Result{}, errors.Join(ErrHashing, err)
	}

	rec := UserRecord{
		ID:           token.GenerateUserID(),
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.users.InsertUser(ctx, rec); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return Result{}, ErrUsernameTaken
		}
		return Result{}, errors.Join(ErrStore, err)
	}

	return s.issueSession(ctx, session.User{ID: rec.ID, Username: rec.Username})
}

// Logout invalidates the session behind tok, if any. Absence of a token or
// session is success, which makes repeated logouts harmless; the transport
// clears the client-held token regardless.
func (s *Service) Logout(ctx context.Context, tok string) error {
	if tok == "" {
		return nil
	}

	sess, _, err := s.sessions.Validate(ctx, tok)
	switch {
	case errors.Is(err, session.ErrNotFound):
		return nil
	case err != nil:
		return err
	}

	return s.sessions.Invalidate(ctx, sess.ID)
}

// Me resolves tok to its session and user. ErrNotAuthenticated covers the
// missing, invalid and expired cases alike; on it the transport should clear
// the stored token. The returned session carries the possibly renewed
// expiry so transports can re-sync cookie lifetimes.
func (s *Service) Me(ctx context.Context, tok string) (session.Session, session.User, error) {
	if tok == "" {
		return session.Session{}, session.User{}, ErrNotAuthenticated
	}

	sess, user, err := s.sessions.Validate(ctx, tok)
	switch {
	case errors.Is(err, session.ErrNotFound):
		return session.Session{}, session.User{}, ErrNotAuthenticated
	case err != nil:
		return session.Session{}, session.User{}, err
	}

	return sess, user, nil
}

func (s *Service) issueSession(ctx context.Context, user session.User) (Result, error) {
	tok := token.GenerateSessionToken()

	sess, err := s.sessions.Create(ctx, tok, user.ID)
	if err != nil {
		return Result{}, fmt.Errorf("create session for user %s: %w", user.ID, err)
	}

	s.log.DebugContext(ctx, "session issued",
		logger.Component("auth"),
		logger.UserID(user.ID),
		logger.SessionID(sess.ID))

	return Result{Token: tok, ExpiresAt: sess.ExpiresAt, User: user}, nil
}
