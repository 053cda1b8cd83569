package localeroute

import (
	"net/http"

	"github.com/dmitrymomot/localekit/pkg/cookie"
	"github.com/dmitrymomot/localekit/pkg/locale"
)

// PreferenceCookieName holds the visitor's confirmed locale choice.
const PreferenceCookieName = "locale_preference"

// preferenceMaxAge keeps the choice for a year.
const preferenceMaxAge = 365 * 24 * 60 * 60

// PreferenceStore reads and writes the locale-preference cookie.
// It only ever holds supported locale codes: unsupported values read as
// absent and are silently refused on write.
type PreferenceStore struct {
	cookies *cookie.Manager
}

// NewPreferenceStore returns a store backed by the given cookie manager.
// The manager's defaults decide scope and the Secure flag.
func NewPreferenceStore(cookies *cookie.Manager) *PreferenceStore {
	return &PreferenceStore{cookies: cookies}
}

// Read returns the stored preference. A missing cookie and a cookie holding
// an unsupported code are both reported as absent, never as an error.
func (s *PreferenceStore) Read(r *http.Request) (locale.Locale, bool) {
	value, err := s.cookies.Get(r, PreferenceCookieName)
	if err != nil {
		return locale.Locale{}, false
	}
	return locale.Lookup(value)
}

// Write persists the preference for a year. Unsupported locales are a no-op
// so invalid state can never be written.
func (s *PreferenceStore) Write(w http.ResponseWriter, l locale.Locale) {
	if !locale.IsSupported(l.Code) {
		return
	}
	s.cookies.Set(w, PreferenceCookieName, l.Code, cookie.WithMaxAge(preferenceMaxAge))
}
