package locale

import "strings"

// Locale describes one supported site language.
type Locale struct {
	// Code is the internal identifier used in URL prefixes and cookies.
	Code string
	// NativeName is the language name in its own script, used by the
	// language switcher.
	NativeName string
	// Hreflang is the ISO code emitted in alternate-link tags. It differs
	// from Code only for the two Chinese variants.
	Hreflang string
}

// IsDefault reports whether the locale is the site default.
func (l Locale) IsDefault() bool { return l.Code == Default.Code }

// Default is the fallback locale served when nothing else resolves.
var Default = Locale{Code: "en", NativeName: "English", Hreflang: "en"}

// supported is the closed set of site languages. The order is stable and
// drives hreflang and sitemap output; the default locale comes first.
var supported = []Locale{
	Default,
	{Code: "zh", NativeName: "简体中文", Hreflang: "zh-Hans"},
	{Code: "zh-tw", NativeName: "繁體中文", Hreflang: "zh-Hant"},
	{Code: "ja", NativeName: "日本語", Hreflang: "ja"},
	{Code: "ko", NativeName: "한국어", Hreflang: "ko"},
	{Code: "th", NativeName: "ไทย", Hreflang: "th"},
	{Code: "vi", NativeName: "Tiếng Việt", Hreflang: "vi"},
	{Code: "my", NativeName: "မြန်မာ", Hreflang: "my"},
	{Code: "es", NativeName: "Español", Hreflang: "es"},
	{Code: "fr", NativeName: "Français", Hreflang: "fr"},
}

// byCode is built once at init for O(1) lookups.
var byCode = func() map[string]Locale {
	m := make(map[string]Locale, len(supported))
	for _, l := range supported {
		m[l.Code] = l
	}
	return m
}()

// Supported returns the supported locales in stable table order.
// The returned slice is a copy and safe to modify.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Lookup resolves a locale code case-insensitively.
func Lookup(code string) (Locale, bool) {
	l, ok := byCode[strings.ToLower(strings.TrimSpace(code))]
	return l, ok
}

// IsSupported reports whether code names a supported locale.
func IsSupported(code string) bool {
	_, ok := Lookup(code)
	return ok
}
