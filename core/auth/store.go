package auth

import "context"

// UserRecord is the identity row as the store sees it, password hash
// included. It must not leave the auth/store boundary; operations return
// session.User instead.
type UserRecord struct {
	ID           string
	Username     string
	PasswordHash string
}

// UserStore defines the user persistence interface the service consumes.
// Uniqueness of usernames is the store's responsibility (a storage-level
// constraint), which is what makes concurrent registration races resolve to
// exactly one winner.
type UserStore interface {
	// FindByUsername returns the user record for a username, or
	// ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (UserRecord, error)

	// InsertUser persists a new user. A username uniqueness violation is
	// reported as ErrUsernameTaken.
	InsertUser(ctx context.Context, user UserRecord) error
}
