package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/hreflang"
	"github.com/dmitrymomot/localekit/pkg/locale"
)

// Pages are the site's page paths, "" being the home page. Every entry is
// published once per locale in the sitemap.
var Pages = []string{"", "/features", "/pricing", "/blog", "/contact"}

type urlSet struct {
	XMLName    xml.Name     `xml:"urlset"`
	Xmlns      string       `xml:"xmlns,attr"`
	XmlnsXHTML string       `xml:"xmlns:xhtml,attr"`
	URLs       []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string          `xml:"loc"`
	Alternates []alternateLink `xml:"xhtml:link"`
}

type alternateLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Sitemap enumerates every (locale, page) pair. Each URL carries the same
// alternate-language map the page head renders, produced by the same
// generator so the two surfaces cannot disagree.
func Sitemap(baseURL string, pages []string) http.HandlerFunc {
	base := strings.TrimSuffix(baseURL, "/")

	return func(w http.ResponseWriter, r *http.Request) {
		set := urlSet{
			Xmlns:      "http://www.sitemaps.org/schemas/sitemap/0.9",
			XmlnsXHTML: "http://www.w3.org/1999/xhtml",
		}

		for _, page := range pages {
			links := hreflang.Generate(base, page)
			alternates := make([]alternateLink, 0, len(links))
			for _, l := range links {
				alternates = append(alternates, alternateLink{
					Rel:      "alternate",
					Hreflang: l.Hreflang,
					Href:     l.Href,
				})
			}
			for _, l := range locale.Supported() {
				set.URLs = append(set.URLs, sitemapURL{
					Loc:        base + "/" + l.Code + page,
					Alternates: alternates,
				})
			}
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write([]byte(xml.Header))
		_ = xml.NewEncoder(w).Encode(set)
	}
}
