package handlers

import (
	"fmt"
	"net/http"
	"strings"
)

// Robots allows everything except the API and the not-found page, and points
// crawlers at the sitemap.
func Robots(baseURL string) http.HandlerFunc {
	base := strings.TrimSuffix(baseURL, "/")
	body := fmt.Sprintf(`User-agent: *
Allow: /
Disallow: /api/
Disallow: /404

Sitemap: %s/sitemap.xml
`, base)

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}
}
