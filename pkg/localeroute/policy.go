package localeroute

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/botdetect"
	"github.com/dmitrymomot/localekit/pkg/geo"
	"github.com/dmitrymomot/localekit/pkg/locale"
)

// Resolution is the outcome of running the strategy chain for one request.
type Resolution struct {
	// Locale the request resolves to. Always set.
	Locale locale.Locale
	// RedirectPath, when non-empty, is the locale-prefixed path the response
	// should redirect to instead of rendering.
	RedirectPath string
	// SetMarker marks the redirect as inferred from geography rather than
	// chosen by the visitor; the banner reads it on the next page load.
	SetMarker bool
	// Persist asks the middleware to write Locale to the preference cookie.
	Persist bool
}

// Strategy inspects a request and either claims it with a Resolution or
// passes. Strategies must be pure with respect to the response: all side
// effects are described in the Resolution and applied by the middleware.
type Strategy func(r *http.Request) (Resolution, bool)

// Policy evaluates an ordered strategy chain to pick a locale and decide
// whether the visitor should be redirected. Precedence, highest first:
// crawler bypass, explicit path locale, stored preference, geo inference,
// Accept-Language, default. The chain is total: every request resolves, at
// worst to the default locale.
type Policy struct {
	prefs      *PreferenceStore
	strategies []Strategy
}

// NewPolicy builds the policy around the given preference store.
func NewPolicy(prefs *PreferenceStore) *Policy {
	p := &Policy{prefs: prefs}
	p.strategies = []Strategy{
		p.botStrategy,
		p.pathStrategy,
		p.preferenceStrategy,
		p.geoStrategy,
		p.acceptLanguageStrategy,
	}
	return p
}

// Resolve runs the chain. Lookup failures inside a strategy are not errors;
// the strategy passes and the next one runs.
func (p *Policy) Resolve(r *http.Request) Resolution {
	for _, strategy := range p.strategies {
		if res, ok := strategy(r); ok {
			return res
		}
	}
	return Resolution{Locale: locale.Default}
}

// botStrategy serves crawlers the default locale with zero side effects so
// indexed URLs never depend on redirects or synthetic headers.
func (p *Policy) botStrategy(r *http.Request) (Resolution, bool) {
	if !botdetect.IsBot(r.UserAgent()) {
		return Resolution{}, false
	}
	return Resolution{Locale: locale.Default}, true
}

// pathStrategy honors an explicit locale prefix in the URL. An explicit
// choice is never "auto": no redirect, no marker. It overwrites a stored
// preference that disagrees, but never creates one on a plain page load.
func (p *Policy) pathStrategy(r *http.Request) (Resolution, bool) {
	l, _, ok := SplitPath(r.URL.Path)
	if !ok {
		return Resolution{}, false
	}

	persist := false
	if stored, found := p.prefs.Read(r); found && stored.Code != l.Code {
		persist = true
	}
	return Resolution{Locale: l, Persist: persist}, true
}

// preferenceStrategy redirects to the stored preference's path. The visitor
// confirmed this choice previously, so no marker is set.
func (p *Policy) preferenceStrategy(r *http.Request) (Resolution, bool) {
	l, ok := p.prefs.Read(r)
	if !ok {
		return Resolution{}, false
	}
	return Resolution{Locale: l, RedirectPath: localePath(l, r)}, true
}

// geoStrategy redirects based on the network-level country signal. This is
// an inferred, unconfirmed choice, so the marker is set for the banner. The
// default locale never geo-redirects: unmapped and English-market countries
// both fall through.
func (p *Policy) geoStrategy(r *http.Request) (Resolution, bool) {
	rec, err := geo.Resolve(r)
	if err != nil {
		return Resolution{}, false
	}
	l, ok := locale.FromCountry(rec.Code)
	if !ok || l.IsDefault() {
		return Resolution{}, false
	}
	return Resolution{Locale: l, RedirectPath: localePath(l, r), SetMarker: true}, true
}

// acceptLanguageStrategy negotiates the Accept-Language header. Served in
// place, without redirecting or marking.
func (p *Policy) acceptLanguageStrategy(r *http.Request) (Resolution, bool) {
	l, ok := locale.Negotiate(r.Header.Get("Accept-Language"))
	if !ok {
		return Resolution{}, false
	}
	return Resolution{Locale: l}, true
}

// SplitPath separates a locale prefix from the rest of the path. The rest is
// "" for the locale home page or a leading-slash path otherwise. Handlers use
// it to recover the unprefixed page path for hreflang generation.
func SplitPath(path string) (locale.Locale, string, bool) {
	seg, rest, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	l, ok := locale.Lookup(seg)
	if !ok {
		return locale.Locale{}, "", false
	}
	if rest == "" {
		return l, "", true
	}
	return l, "/" + rest, true
}

// localePath builds the redirect target for an unprefixed request,
// preserving the query string.
func localePath(l locale.Locale, r *http.Request) string {
	path := r.URL.Path
	if path == "/" {
		path = ""
	}
	target := "/" + l.Code + path
	if q := r.URL.RawQuery; q != "" {
		target += "?" + q
	}
	return target
}
