package localeroute

import (
	"net/http"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

// Middleware runs the policy on every request before rendering. It applies
// at most one preference write and at most one redirect with at most one
// marker cookie, then stores the resolved locale in the request context for
// downstream handlers.
func Middleware(policy *Policy, marker *MarkerStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := policy.Resolve(r)

			if res.Persist {
				policy.prefs.Write(w, res.Locale)
			}

			if res.RedirectPath != "" {
				if res.SetMarker {
					marker.Set(w)
				}
				http.Redirect(w, r, res.RedirectPath, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(locale.WithContext(r.Context(), res.Locale)))
		})
	}
}
