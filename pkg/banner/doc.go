// Package banner implements the auto-redirect confirmation banner as a
// session-scoped state machine.
//
// When the locale middleware redirects a first-time visitor based on a geo
// signal, it leaves a read-once marker. The banner shows at most once per
// browsing session on top of that marker, offering to keep the inferred
// language or switch back to English, and dismisses itself after ten
// seconds if untouched. Dismissal is terminal for the session.
package banner
