package sessiontransport

import (
	"log/slog"

	"github.com/dmitrymomot/authkit/core/auth"
	"github.com/dmitrymomot/authkit/core/cookie"
)

// Config provides environment-based configuration for the transports.
type Config struct {
	// CookieName is the name of the session cookie.
	CookieName string `env:"AUTH_COOKIE_NAME" envDefault:"auth-session"`
	// CookieSecure restricts the cookie to HTTPS. Enable in production.
	CookieSecure bool `env:"AUTH_COOKIE_SECURE" envDefault:"false"`
	// Redirect targets for the form (SSR) transport.
	AfterLogin    string `env:"AUTH_REDIRECT_AFTER_LOGIN" envDefault:"/dashboard"`
	AfterRegister string `env:"AUTH_REDIRECT_AFTER_REGISTER" envDefault:"/dashboard"`
	AfterLogout   string `env:"AUTH_REDIRECT_AFTER_LOGOUT" envDefault:"/login"`
}

// NewCookieFromConfig creates the token carrier from configuration.
func NewCookieFromConfig(cfg Config, m *cookie.Manager) *Cookie {
	return NewCookie(m, cfg.CookieName, cfg.CookieSecure)
}

// NewFormFromConfig creates the SSR form transport from configuration.
func NewFormFromConfig(cfg Config, svc *auth.Service, carrier *Cookie, log *slog.Logger) *Form {
	return NewForm(svc, carrier, Redirects{
		AfterLogin:    cfg.AfterLogin,
		AfterRegister: cfg.AfterRegister,
		AfterLogout:   cfg.AfterLogout,
	}, log)
}
