// Package geo resolves the visitor's country from headers injected by the
// hosting layer. It never touches the network: by the time a request reaches
// the application the edge has already materialized the country code.
//
// Headers are consulted in descending priority until the first non-empty
// value is found:
//
//  1. X-Vercel-IP-Country – injected by the edge provider
//  2. CF-IPCountry        – injected by the CDN
//  3. X-Country-Code      – generic fallback for local testing and proxies
//
// A missing signal and an unrecognized code are distinct failures
// (ErrNoGeoSignal vs UnknownCountryError); both are non-fatal to locale
// resolution, which simply falls through to the next rule.
package geo

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/country"
)

// Header names in resolution priority order.
const (
	HeaderVercelCountry  = "X-Vercel-IP-Country"
	HeaderCFCountry      = "CF-IPCountry"
	HeaderGenericCountry = "X-Country-Code"
)

// countryHeaders is the strict priority order; first non-empty value wins.
var countryHeaders = []string{
	HeaderVercelCountry,
	HeaderCFCountry,
	HeaderGenericCountry,
}

// Resolve extracts the visitor's country from request headers and looks it
// up in the country directory. It returns ErrNoGeoSignal when no header is
// present and UnknownCountryError when a header carries an unmapped code.
func Resolve(r *http.Request) (country.Record, error) {
	code := ""
	for _, h := range countryHeaders {
		if v := strings.TrimSpace(r.Header.Get(h)); v != "" {
			code = v
			break
		}
	}
	if code == "" {
		return country.Record{}, ErrNoGeoSignal
	}

	rec, ok := country.Lookup(code)
	if !ok {
		return country.Record{}, &UnknownCountryError{Code: strings.ToUpper(code)}
	}
	return rec, nil
}
