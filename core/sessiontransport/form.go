package sessiontransport

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authkit/core/auth"
	"github.com/dmitrymomot/authkit/core/logger"
)

// Redirects holds the post-action targets for server-rendered flows.
type Redirects struct {
	AfterLogin    string
	AfterRegister string
	AfterLogout   string
}

// DefaultRedirects mirrors the conventional app layout: authenticated users
// land on the dashboard, logged-out users on the login page.
func DefaultRedirects() Redirects {
	return Redirects{
		AfterLogin:    "/dashboard",
		AfterRegister: "/dashboard",
		AfterLogout:   "/login",
	}
}

// Form exposes the auth operations as form handlers for server-rendered
// apps: credentials arrive as POST form fields, success responds with a
// redirect.
type Form struct {
	auth      *auth.Service
	carrier   *Cookie
	redirects Redirects
	log       *slog.Logger
}

// NewForm creates the form transport over an auth service and token carrier.
func NewForm(svc *auth.Service, carrier *Cookie, redirects Redirects, log *slog.Logger) *Form {
	if log == nil {
		log = slog.Default()
	}
	if redirects == (Redirects{}) {
		redirects = DefaultRedirects()
	}
	return &Form{auth: svc, carrier: carrier, redirects: redirects, log: log}
}

// Login handles a POST form with username and password fields.
func (f *Form) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	res, err := f.auth.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		f.fail(w, r, err, "login")
		return
	}

	if err := f.carrier.Set(w, res.Token, res.ExpiresAt); err != nil {
		f.fail(w, r, err, "login")
		return
	}
	http.Redirect(w, r, f.redirects.AfterLogin, http.StatusFound)
}

// Register handles a POST form with username and password fields.
func (f *Form) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	res, err := f.auth.Register(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		f.fail(w, r, err, "register")
		return
	}

	if err := f.carrier.Set(w, res.Token, res.ExpiresAt); err != nil {
		f.fail(w, r, err, "register")
		return
	}
	http.Redirect(w, r, f.redirects.AfterRegister, http.StatusFound)
}

// Logout invalidates the current session, clears the cookie and redirects.
// It succeeds regardless of whether a session existed.
func (f *Form) Logout(w http.ResponseWriter, r *http.Request) {
	if tok, err := f.carrier.Token(r); err == nil {
		if err := f.auth.Logout(r.Context(), tok); err != nil {
			f.log.ErrorContext(r.Context(), "logout failed",
				logger.Component("sessiontransport"),
				logger.Error(err))
		}
	}

	f.carrier.Clear(w)
	http.Redirect(w, r, f.redirects.AfterLogout, http.StatusFound)
}

func (f *Form) fail(w http.ResponseWriter, r *http.Request, err error, op string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		f.log.ErrorContext(r.Context(), "auth operation failed",
			logger.Component("sessiontransport"),
			logger.Event(op),
			logger.Error(err))
	}
	http.Error(w, publicMessage(err), status)
}
