package localeroute

import (
	"net/http"

	"github.com/dmitrymomot/localekit/pkg/cookie"
)

// MarkerCookieName flags a redirect that was inferred from geography rather
// than chosen by the visitor. Session-lifetime, read exactly once.
const MarkerCookieName = "locale_auto_redirect"

const markerValue = "1"

// MarkerStore manages the auto-redirect marker cookie.
type MarkerStore struct {
	cookies *cookie.Manager
}

// NewMarkerStore returns a store backed by the given cookie manager.
func NewMarkerStore(cookies *cookie.Manager) *MarkerStore {
	return &MarkerStore{cookies: cookies}
}

// Set writes the marker as a session-lifetime flash cookie.
func (s *MarkerStore) Set(w http.ResponseWriter) {
	s.cookies.SetFlash(w, MarkerCookieName, markerValue)
}

// Present reports whether the marker is on the request without consuming it.
func (s *MarkerStore) Present(r *http.Request) bool {
	value, err := s.cookies.Get(r, MarkerCookieName)
	return err == nil && value == markerValue
}

// Consume reads the marker and clears it in the same response.
func (s *MarkerStore) Consume(w http.ResponseWriter, r *http.Request) bool {
	value, err := s.cookies.GetFlash(w, r, MarkerCookieName)
	return err == nil && value == markerValue
}
