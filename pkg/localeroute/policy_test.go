package localeroute_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/cookie"
	"github.com/dmitrymomot/localekit/pkg/geo"
	"github.com/dmitrymomot/localekit/pkg/locale"
	"github.com/dmitrymomot/localekit/pkg/localeroute"
)

func newPolicy() *localeroute.Policy {
	return localeroute.NewPolicy(localeroute.NewPreferenceStore(cookie.New()))
}

func getRequest(path string, mutate ...func(*http.Request)) *http.Request {
	r := httptest.NewRequest("GET", path, nil)
	for _, m := range mutate {
		m(r)
	}
	return r
}

func withPreference(code string) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: localeroute.PreferenceCookieName, Value: code})
	}
}

func withCountry(code string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set(geo.HeaderVercelCountry, code)
	}
}

func withUserAgent(ua string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("User-Agent", ua)
	}
}

func withAcceptLanguage(header string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Accept-Language", header)
	}
}

func TestPolicy_BotBypass(t *testing.T) {
	t.Parallel()
	policy := newPolicy()

	// Bot bypass wins over every other signal: geo, cookie, Accept-Language.
	res := policy.Resolve(getRequest("/",
		withUserAgent("Googlebot/2.1"),
		withCountry("CN"),
		withPreference("ja"),
		withAcceptLanguage("th"),
	))

	assert.Equal(t, locale.Default, res.Locale)
	assert.Empty(t, res.RedirectPath)
	assert.False(t, res.SetMarker)
	assert.False(t, res.Persist)
}

func TestPolicy_ExplicitPathLocale(t *testing.T) {
	t.Parallel()
	policy := newPolicy()

	t.Run("honored as-is without redirect", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/zh/pricing"))
		assert.Equal(t, "zh", res.Locale.Code)
		assert.Empty(t, res.RedirectPath)
		assert.False(t, res.SetMarker)
		assert.False(t, res.Persist, "plain page loads never create a preference")
	})

	t.Run("beats geo signal", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/ja", withCountry("CN")))
		assert.Equal(t, "ja", res.Locale.Code)
		assert.Empty(t, res.RedirectPath)
		assert.False(t, res.SetMarker)
	})

	t.Run("overwrites a differing stored preference", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/zh/pricing", withPreference("ja")))
		assert.Equal(t, "zh", res.Locale.Code)
		assert.True(t, res.Persist)
		assert.Empty(t, res.RedirectPath)
	})

	t.Run("matching stored preference is left alone", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/zh/pricing", withPreference("zh")))
		assert.Equal(t, "zh", res.Locale.Code)
		assert.False(t, res.Persist)
	})

	t.Run("unsupported prefix is not a locale", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/de/pricing"))
		assert.Equal(t, locale.Default, res.Locale)
	})
}

func TestPolicy_StoredPreference(t *testing.T) {
	t.Parallel()
	policy := newPolicy()

	t.Run("redirects without marker", func(t *testing.T) {
		t.Parallel()
		// Previously confirmed choice: redirect yes, marker no.
		res := policy.Resolve(getRequest("/pricing", withPreference("ja")))
		assert.Equal(t, "ja", res.Locale.Code)
		assert.Equal(t, "/ja/pricing", res.RedirectPath)
		assert.False(t, res.SetMarker)
	})

	t.Run("beats geo signal", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/", withPreference("ja"), withCountry("CN")))
		assert.Equal(t, "ja", res.Locale.Code)
		assert.Equal(t, "/ja", res.RedirectPath)
		assert.False(t, res.SetMarker)
	})

	t.Run("invalid stored value advances the chain", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/", withPreference("klingon"), withCountry("TH")))
		assert.Equal(t, "th", res.Locale.Code)
		assert.True(t, res.SetMarker, "falls through to geo inference")
	})

	t.Run("preserves the query string", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/pricing?plan=pro", withPreference("ja")))
		assert.Equal(t, "/ja/pricing?plan=pro", res.RedirectPath)
	})
}

func TestPolicy_GeoInference(t *testing.T) {
	t.Parallel()
	policy := newPolicy()

	t.Run("redirects with marker", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/", withCountry("MM")))
		assert.Equal(t, "my", res.Locale.Code)
		assert.Equal(t, "/my", res.RedirectPath)
		assert.True(t, res.SetMarker, "inferred choice must be marked")
	})

	t.Run("keeps the page path", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/pricing", withCountry("TW")))
		assert.Equal(t, "zh-tw", res.Locale.Code)
		assert.Equal(t, "/zh-tw/pricing", res.RedirectPath)
	})

	t.Run("unmapped country advances the chain", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/", withCountry("US"), withAcceptLanguage("ko")))
		assert.Equal(t, "ko", res.Locale.Code)
		assert.Empty(t, res.RedirectPath)
		assert.False(t, res.SetMarker)
	})

	t.Run("unknown country code advances the chain", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/", withCountry("ZZ")))
		assert.Equal(t, locale.Default, res.Locale)
		assert.Empty(t, res.RedirectPath)
	})
}

func TestPolicy_AcceptLanguage(t *testing.T) {
	t.Parallel()
	policy := newPolicy()

	t.Run("negotiates without redirect or marker", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/", withAcceptLanguage("zh")))
		assert.Equal(t, "zh", res.Locale.Code)
		assert.Empty(t, res.RedirectPath)
		assert.False(t, res.SetMarker)
		assert.False(t, res.Persist)
	})

	t.Run("unsupported languages fall to default", func(t *testing.T) {
		t.Parallel()
		res := policy.Resolve(getRequest("/", withAcceptLanguage("de,pt")))
		assert.Equal(t, locale.Default, res.Locale)
	})
}

func TestPolicy_TotalFallback(t *testing.T) {
	t.Parallel()
	policy := newPolicy()

	// Nothing to go on at all: resolution still terminates at the default.
	res := policy.Resolve(getRequest("/"))
	require.Equal(t, locale.Default, res.Locale)
	assert.Empty(t, res.RedirectPath)
	assert.False(t, res.SetMarker)
	assert.False(t, res.Persist)
}

func TestSplitPath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		path     string
		wantCode string
		wantRest string
		found    bool
	}{
		{"locale home", "/zh", "zh", "", true},
		{"locale home trailing slash", "/zh/", "zh", "", true},
		{"locale page", "/zh/pricing", "zh", "/pricing", true},
		{"nested page", "/zh-tw/blog/post-1", "zh-tw", "/blog/post-1", true},
		{"no locale", "/pricing", "", "", false},
		{"root", "/", "", "", false},
		{"unsupported prefix", "/de/pricing", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, rest, ok := localeroute.SplitPath(tt.path)
			require.Equal(t, tt.found, ok)
			assert.Equal(t, tt.wantCode, l.Code)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}
