package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/internal/handlers"
	"github.com/dmitrymomot/localekit/pkg/cookie"
	"github.com/dmitrymomot/localekit/pkg/locale"
	"github.com/dmitrymomot/localekit/pkg/localeroute"
)

func shellRequest(t *testing.T, path, localeCode string, withMarker bool) *http.Request {
	t.Helper()
	r := httptest.NewRequest("GET", path, nil)
	l, ok := locale.Lookup(localeCode)
	require.True(t, ok)
	r = r.WithContext(locale.WithContext(r.Context(), l))
	if withMarker {
		r.AddCookie(&http.Cookie{Name: localeroute.MarkerCookieName, Value: "1"})
	}
	return r
}

func TestPageShell(t *testing.T) {
	t.Parallel()
	marker := localeroute.NewMarkerStore(cookie.New())
	shell := handlers.PageShell(base, marker)

	t.Run("emits lang attribute and alternate links", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		shell(rec, shellRequest(t, "/zh/pricing", "zh", false))

		body := rec.Body.String()
		assert.Contains(t, body, `<html lang="zh-Hans">`)
		assert.Contains(t, body, `data-locale="zh"`)

		// N+1 alternate links for the unprefixed page path.
		n := len(locale.Supported())
		assert.Equal(t, n+1, strings.Count(body, `<link rel="alternate"`))
		assert.Contains(t, body, `href="`+base+`/en/pricing"`)
		assert.Contains(t, body, `hreflang="x-default"`)
	})

	t.Run("marker mounts the banner and is consumed", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		shell(rec, shellRequest(t, "/zh", "zh", true))

		assert.Contains(t, rec.Body.String(), `data-auto-redirected="true"`)

		// Read-once: the response deletes the marker cookie.
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, localeroute.MarkerCookieName, cookies[0].Name)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("no banner without marker", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		shell(rec, shellRequest(t, "/zh", "zh", false))
		assert.NotContains(t, rec.Body.String(), "locale-banner")
	})

	t.Run("no banner for default locale even with marker", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		shell(rec, shellRequest(t, "/en", "en", true))
		assert.NotContains(t, rec.Body.String(), "locale-banner")
	})
}
