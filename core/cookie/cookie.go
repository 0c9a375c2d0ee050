package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const (
	// MaxCookieSize is the maximum size for a cookie (4KB).
	MaxCookieSize = 4096
	// minSecretLength guards against trivially brute-forceable HMAC keys.
	minSecretLength = 32
)

// Manager handles HTTP cookie operations with signing support.
type Manager struct {
	secrets  []string
	defaults Options
	maxSize  int
}

// New creates a cookie manager with the given signing secrets and default
// options. At least one secret of 32+ characters is required; signing uses
// the first secret, verification tries all of them (key rotation).
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d",
				ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	defaults = applyOptions(defaults, opts)

	return &Manager{
		secrets:  secrets,
		defaults: defaults,
		maxSize:  MaxCookieSize,
	}, nil
}

// Set stores a cookie value.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Expires:  options.Expires,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}

	if header := cookie.String(); len(header) > m.maxSize {
		return ErrCookieTooLarge{Name: name, Size: len(header), Max: m.maxSize}
	}

	http.SetCookie(w, cookie)
	return nil
}

// Get retrieves a cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

// Delete removes a cookie by overwriting it with an already-expired one.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}

// SetSigned stores a value with an HMAC signature.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	return m.Set(w, name, m.sign(value), opts...)
}

// GetSigned retrieves and verifies a signed cookie value.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.verify(signed)
}

// sign creates an HMAC-SHA256 signature over the value.
func (m *Manager) sign(value string) string {
	mac := hmac.New(sha256.New, []byte(m.secrets[0]))
	mac.Write([]byte(value))
	signature := base64.URLEncoding.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString([]byte(value)) + "|" + signature
}

// verify checks the HMAC signature of a signed value against all secrets.
func (m *Manager) verify(signed string) (string, error) {
	parts := strings.SplitN(signed, "|", 2)
	if len(parts) != 2 {
		return "", ErrInvalidFormat
	}

	value, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", ErrInvalidFormat
	}

	validIndex := slices.IndexFunc(m.secrets, func(secret string) bool {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(value)
		expected := base64.URLEncoding.EncodeToString(mac.Sum(nil))
		return subtle.ConstantTimeCompare([]byte(parts[1]), []byte(expected)) == 1
	})
	if validIndex < 0 {
		return "", ErrInvalidSignature
	}

	return string(value), nil
}
