// Package locale defines the closed set of site languages and the pure
// lookup functions built on it: code lookup, country-to-locale mapping, and
// Accept-Language negotiation.
//
// The set is fixed at compile time. Exactly one locale is the default (en),
// and the two Chinese variants carry hreflang codes (zh-Hans, zh-Hant) that
// differ from their internal codes; every other locale is identity-mapped.
//
// # Usage
//
//	if l, ok := locale.Lookup("zh-TW"); ok {
//		fmt.Println(l.NativeName) // 繁體中文
//	}
//
//	l, ok := locale.Negotiate(r.Header.Get("Accept-Language"))
//
// Request-scoped plumbing lives in WithContext / FromContext; the resolution
// middleware in pkg/localeroute stores the chosen locale there.
package locale
