package sessiontransport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authkit/core/auth"
	"github.com/dmitrymomot/authkit/core/logger"
)

// API exposes the auth operations as JSON endpoints for single-page apps.
// The session token never appears in a response body; it travels only in
// the HttpOnly cookie.
type API struct {
	auth    *auth.Service
	carrier *Cookie
	log     *slog.Logger
}

// NewAPI creates the JSON transport over an auth service and token carrier.
func NewAPI(svc *auth.Service, carrier *Cookie, log *slog.Logger) *API {
	if log == nil {
		log = slog.Default()
	}
	return &API{auth: svc, carrier: carrier, log: log}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Login handles POST with a JSON credentials body.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res, err := a.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		a.fail(w, r, err, "login")
		return
	}

	if err := a.carrier.Set(w, res.Token, res.ExpiresAt); err != nil {
		a.fail(w, r, err, "login")
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: res.User.ID, Username: res.User.Username})
}

// Register handles POST with a JSON credentials body.
func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res, err := a.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		a.fail(w, r, err, "register")
		return
	}

	if err := a.carrier.Set(w, res.Token, res.ExpiresAt); err != nil {
		a.fail(w, r, err, "register")
		return
	}
	writeJSON(w, http.StatusCreated, userResponse{ID: res.User.ID, Username: res.User.Username})
}

// Logout invalidates the current session, if any, and always clears the
// cookie.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	tok, err := a.carrier.Token(r)
	if err != nil {
		// No usable token; clearing the cookie is all there is to do.
		a.carrier.Clear(w)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	err = a.auth.Logout(r.Context(), tok)
	a.carrier.Clear(w)
	if err != nil {
		a.fail(w, r, err, "logout")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me resolves the current session. A renewed session re-syncs the cookie
// expiry; a dead one clears the cookie.
func (a *API) Me(w http.ResponseWriter, r *http.Request) {
	tok, err := a.carrier.Token(r)
	if err != nil {
		a.carrier.Clear(w)
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	sess, user, err := a.auth.Me(r.Context(), tok)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			a.carrier.Clear(w)
		}
		a.fail(w, r, err, "me")
		return
	}

	if err := a.carrier.Set(w, tok, sess.ExpiresAt); err != nil {
		a.log.WarnContext(r.Context(), "failed to refresh session cookie",
			logger.Component("sessiontransport"),
			logger.Error(err))
	}
	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

// fail writes the status-mapped error response, logging the cause when it
// is opaque to the client.
func (a *API) fail(w http.ResponseWriter, r *http.Request, err error, op string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		a.log.ErrorContext(r.Context(), "auth operation failed",
			logger.Component("sessiontransport"),
			logger.Event(op),
			logger.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: publicMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
