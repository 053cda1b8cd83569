package handlers

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/hreflang"
	"github.com/dmitrymomot/localekit/pkg/locale"
	"github.com/dmitrymomot/localekit/pkg/localeroute"
)

// PageShell renders the document shell for a page: the lang attribute, the
// alternate-language link set, and the banner mount point. Section rendering
// is done by the content layer; the shell only proves the locale wiring.
//
// The auto-redirect marker is consumed here (read-once) and handed to the
// client as a data attribute on the banner mount point.
func PageShell(baseURL string, marker *localeroute.MarkerStore) http.HandlerFunc {
	base := strings.TrimSuffix(baseURL, "/")

	return func(w http.ResponseWriter, r *http.Request) {
		l := locale.FromContext(r.Context())

		// Recover the unprefixed page path for hreflang hrefs.
		path := r.URL.Path
		if _, rest, ok := localeroute.SplitPath(path); ok {
			path = rest
		} else if path == "/" {
			path = ""
		}

		autoRedirected := !l.IsDefault() && marker.Consume(w, r)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "<!doctype html>\n<html lang=\"%s\">\n<head>\n<meta charset=\"utf-8\" />\n",
			html.EscapeString(l.Hreflang))
		_, _ = w.Write([]byte(hreflang.LinkTags(hreflang.Generate(base, path))))
		fmt.Fprintf(w, "</head>\n<body data-locale=\"%s\">\n", html.EscapeString(l.Code))
		if autoRedirected {
			fmt.Fprintf(w, "<div id=\"locale-banner\" data-locale=\"%s\" data-auto-redirected=\"true\"></div>\n",
				html.EscapeString(l.Code))
		}
		_, _ = w.Write([]byte("</body>\n</html>\n"))
	}
}
