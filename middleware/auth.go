package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authkit/core/auth"
	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/core/sessiontransport"
)

type authContextKey struct{}

// authContext carries the resolved session and user through the request.
type authContext struct {
	session session.Session
	user    session.User
}

// Config configures the Auth middleware.
type Config struct {
	// Skip disables the middleware for specific requests.
	Skip func(r *http.Request) bool
	// RequireAuth rejects unauthenticated requests instead of passing them
	// through without context values.
	RequireAuth bool
	// ErrorHandler overrides the response for rejected requests.
	// Default: 401 with a plain status text.
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
	// Logger for structured logging (default: slog with io.Discard).
	Logger *slog.Logger
}

// Auth creates middleware that resolves the session cookie, stores the
// authenticated user in the request context, and re-issues the cookie so its
// expiry follows session renewal. Requests without a valid session pass
// through unauthenticated.
func Auth(svc *auth.Service, carrier *sessiontransport.Cookie) func(http.Handler) http.Handler {
	return AuthWithConfig(svc, carrier, Config{})
}

// AuthWithConfig creates the session middleware with custom configuration.
func AuthWithConfig(svc *auth.Service, carrier *sessiontransport.Cookie, cfg Config) func(http.Handler) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	reject := cfg.ErrorHandler
	if reject == nil {
		reject = func(w http.ResponseWriter, r *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			tok, err := carrier.Token(r)
			if err != nil {
				// A tampered cookie is worth clearing; a missing one is not.
				if errors.Is(err, sessiontransport.ErrInvalidToken) {
					carrier.Clear(w)
				}
				if cfg.RequireAuth {
					reject(w, r, err)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			sess, user, err := svc.Me(r.Context(), tok)
			if err != nil {
				if errors.Is(err, auth.ErrNotAuthenticated) {
					carrier.Clear(w)
				} else {
					log.ErrorContext(r.Context(), "session resolution failed",
						logger.Component("middleware"),
						logger.Error(err))
				}
				if cfg.RequireAuth {
					reject(w, r, err)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			// Keep the cookie expiry in sync with session renewal.
			if err := carrier.Set(w, tok, sess.ExpiresAt); err != nil {
				log.WarnContext(r.Context(), "failed to refresh session cookie",
					logger.Component("middleware"),
					logger.Error(err))
			}

			ctx := context.WithValue(r.Context(), authContextKey{}, authContext{session: sess, user: user})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user stored by Auth.
func UserFromContext(ctx context.Context) (session.User, bool) {
	ac, ok := ctx.Value(authContextKey{}).(authContext)
	return ac.user, ok
}

// SessionFromContext returns the resolved session stored by Auth.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	ac, ok := ctx.Value(authContextKey{}).(authContext)
	return ac.session, ok
}
