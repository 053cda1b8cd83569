// Package localeroute decides which language a visitor sees and whether the
// response should redirect to a locale-prefixed path.
//
// The decision is an explicit ordered chain of strategies, each of which
// either claims the request or passes:
//
//  1. crawler bypass      – default locale, no side effects
//  2. explicit path locale – honored as-is, may overwrite a stale preference
//  3. stored preference    – redirect, previously confirmed, no marker
//  4. geo inference        – redirect with the auto-redirect marker set
//  5. Accept-Language      – served in place
//  6. default locale       – total fallback
//
// Nothing in the chain is fatal: a missing cookie, an unknown country code,
// or a malformed Accept-Language header simply advances to the next rule.
// A visitor always receives some locale's content.
//
// Side effects per request are bounded: at most one preference-cookie write
// and at most one redirect carrying at most one marker cookie.
package localeroute
