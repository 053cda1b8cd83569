package locale

import "golang.org/x/text/language"

// matcher negotiates Accept-Language headers against the supported set.
// Index order mirrors the supported slice so a match maps straight back to
// its Locale.
var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, l := range supported {
		tags[i] = language.Make(l.Code)
	}
	return language.NewMatcher(tags)
}()

// Headers longer than this are truncated before parsing to bound work on
// hostile input. RFC 7231 sets no limit; 4KB is generous.
const maxAcceptLanguageLength = 4096

// Negotiate picks the best supported locale for an Accept-Language header.
// It returns false when the header is empty, malformed, or none of the
// requested languages match the supported set.
func Negotiate(acceptLanguage string) (Locale, bool) {
	if acceptLanguage == "" {
		return Locale{}, false
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return Locale{}, false
	}

	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return Locale{}, false
	}
	return supported[idx], true
}
