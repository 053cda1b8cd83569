package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager sets and reads cookies with a shared set of default attributes.
// The zero defaults are site-wide path and lax same-site; the Secure flag is
// opted in per environment at construction time.
type Manager struct {
	defaults Options
}

// New returns a Manager with the given default options applied on top of
// Path "/" and SameSite=Lax.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
	defaults = applyOptions(defaults, opts)
	return &Manager{defaults: defaults}
}

// Set writes a cookie using the manager defaults merged with opts.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

// Get returns a cookie value, or ErrCookieNotFound when absent.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires a cookie immediately using the manager's default scope.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}

// SetFlash writes a session-lifetime cookie intended to be read exactly once.
// MaxAge is forced to zero so the cookie dies with the browsing session.
func (m *Manager) SetFlash(w http.ResponseWriter, name, value string, opts ...Option) {
	m.Set(w, name, value, append(opts, WithMaxAge(0))...)
}

// GetFlash reads a flash cookie and deletes it in the same response,
// enforcing read-once semantics. Returns ErrCookieNotFound when absent.
func (m *Manager) GetFlash(w http.ResponseWriter, r *http.Request, name string) (string, error) {
	value, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	m.Delete(w, name)
	return value, nil
}
