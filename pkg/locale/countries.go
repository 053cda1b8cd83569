package locale

import "strings"

// countryLocales maps ISO 3166-1 alpha-2 country codes to the locale served
// to visitors from that country when no explicit preference exists. Countries
// absent from the table fall through to Accept-Language negotiation; English-
// speaking markets are deliberately unmapped so they never auto-redirect.
var countryLocales = map[string]string{
	"CN": "zh",
	"SG": "zh",
	"TW": "zh-tw",
	"HK": "zh-tw",
	"MO": "zh-tw",
	"JP": "ja",
	"KR": "ko",
	"TH": "th",
	"VN": "vi",
	"MM": "my",
	"ES": "es",
	"MX": "es",
	"AR": "es",
	"FR": "fr",
}

// FromCountry returns the locale served to visitors from the given country.
// The code is matched case-insensitively. Unmapped countries return false.
func FromCountry(countryCode string) (Locale, bool) {
	code, ok := countryLocales[strings.ToUpper(strings.TrimSpace(countryCode))]
	if !ok {
		return Locale{}, false
	}
	return byCode[code], true
}
