// Package router wires the site's HTTP surface: the geo endpoint, SEO
// artifacts, and locale-resolved page routes.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/localekit/internal/config"
	"github.com/dmitrymomot/localekit/internal/handlers"
	"github.com/dmitrymomot/localekit/pkg/cookie"
	"github.com/dmitrymomot/localekit/pkg/localeroute"
	"github.com/dmitrymomot/localekit/pkg/requestid"
)

// New builds the application handler. API and SEO routes sit outside the
// locale middleware: they are locale-independent and must never redirect.
func New(cfg config.Config, log *slog.Logger, cookies *cookie.Manager) http.Handler {
	prefs := localeroute.NewPreferenceStore(cookies)
	marker := localeroute.NewMarkerStore(cookies)
	policy := localeroute.NewPolicy(prefs)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(RequestLogger(log))

	r.Get("/api/geo", handlers.Geo(log))
	r.Get("/sitemap.xml", handlers.Sitemap(cfg.BaseURL, handlers.Pages))
	r.Get("/robots.txt", handlers.Robots(cfg.BaseURL))

	r.Group(func(pages chi.Router) {
		pages.Use(localeroute.Middleware(policy, marker))
		pages.Get("/", handlers.PageShell(cfg.BaseURL, marker))
		pages.Get("/*", handlers.PageShell(cfg.BaseURL, marker))
	})

	return r
}
