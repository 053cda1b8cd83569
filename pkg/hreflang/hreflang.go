// Package hreflang generates the alternate-language link set search engines
// use to pick the right locale variant of a page.
//
// One function feeds both the per-page <link rel="alternate"> tags and the
// sitemap's per-URL alternate maps, so the two surfaces cannot diverge.
package hreflang

import (
	"fmt"
	"html"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

// Link is one alternate-language entry.
type Link struct {
	// Hreflang is the ISO hreflang code (zh-Hans, zh-Hant, ...), or
	// "x-default" for the default-locale entry.
	Hreflang string
	// Href is the absolute URL of the page in that language.
	Href string
}

// XDefault is the hreflang value of the fallback entry.
const XDefault = "x-default"

// Generate returns exactly N+1 links for a page: one per supported locale in
// table order, then the x-default entry pointing at the default locale's URL.
// path is "" for the home page or a leading-slash path otherwise; baseURL
// must not end with a slash. Pure: output depends only on the arguments and
// the static locale table.
func Generate(baseURL, path string) []Link {
	base := strings.TrimSuffix(baseURL, "/")
	supported := locale.Supported()

	links := make([]Link, 0, len(supported)+1)
	for _, l := range supported {
		links = append(links, Link{
			Hreflang: l.Hreflang,
			Href:     base + "/" + l.Code + path,
		})
	}
	links = append(links, Link{
		Hreflang: XDefault,
		Href:     base + "/" + locale.Default.Code + path,
	})
	return links
}

// LinkTags renders the links as <link rel="alternate"> elements for a page
// head, one per line.
func LinkTags(links []Link) string {
	var b strings.Builder
	for _, l := range links {
		fmt.Fprintf(&b, `<link rel="alternate" hreflang="%s" href="%s" />`+"\n",
			html.EscapeString(l.Hreflang), html.EscapeString(l.Href))
	}
	return b.String()
}
