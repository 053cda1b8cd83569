package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

func TestSupported(t *testing.T) {
	t.Parallel()
	supported := locale.Supported()
	require.Len(t, supported, 10)
	assert.Equal(t, locale.Default, supported[0], "default locale leads the table")

	seen := make(map[string]bool)
	defaults := 0
	for _, l := range supported {
		assert.False(t, seen[l.Code], "duplicate code %s", l.Code)
		seen[l.Code] = true
		assert.NotEmpty(t, l.NativeName)
		assert.NotEmpty(t, l.Hreflang)
		if l.IsDefault() {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults, "exactly one default locale")
}

func TestSupported_ReturnsCopy(t *testing.T) {
	t.Parallel()
	first := locale.Supported()
	first[0] = locale.Locale{Code: "mutated"}
	assert.Equal(t, locale.Default, locale.Supported()[0])
}

func TestLookup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		code  string
		want  string
		found bool
	}{
		{"default", "en", "en", true},
		{"simplified chinese", "zh", "zh", true},
		{"traditional chinese", "zh-tw", "zh-tw", true},
		{"uppercase", "ZH-TW", "zh-tw", true},
		{"whitespace", " ja ", "ja", true},
		{"unsupported", "de", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, ok := locale.Lookup(tt.code)
			require.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, l.Code)
		})
	}
}

func TestHreflangCodes(t *testing.T) {
	t.Parallel()
	// The two Chinese variants carry script-specific hreflang codes; every
	// other locale is identity-mapped.
	for _, l := range locale.Supported() {
		switch l.Code {
		case "zh":
			assert.Equal(t, "zh-Hans", l.Hreflang)
		case "zh-tw":
			assert.Equal(t, "zh-Hant", l.Hreflang)
		default:
			assert.Equal(t, l.Code, l.Hreflang)
		}
	}
}

func TestFromCountry(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		country string
		want    string
		found   bool
	}{
		{"china", "CN", "zh", true},
		{"lowercase", "cn", "zh", true},
		{"taiwan", "TW", "zh-tw", true},
		{"hong kong", "HK", "zh-tw", true},
		{"myanmar", "MM", "my", true},
		{"mexico maps to spanish", "MX", "es", true},
		{"english market unmapped", "US", "", false},
		{"unknown country", "ZZ", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, ok := locale.FromCountry(tt.country)
			require.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, l.Code)
		})
	}
}

func TestFromCountry_NeverDefault(t *testing.T) {
	t.Parallel()
	// The mapping exists to pick a non-default locale; English-speaking
	// markets are deliberately absent so geo inference never redirects to en.
	for _, code := range []string{"US", "GB", "CA", "AU", "NZ"} {
		_, ok := locale.FromCountry(code)
		assert.False(t, ok, "country %s must not map", code)
	}
}
