// Package cookie provides a small cookie manager with shared default
// attributes and read-once flash cookies.
//
// The two cookies this site writes — the locale preference and the
// auto-redirect marker — carry non-sensitive locale codes, so values are
// stored plain; anything unexpected is discarded by validation at the
// reading side rather than rejected cryptographically.
//
// Flash cookies are session-lifetime values deleted on first read. The
// locale middleware uses one to hand the "this redirect was inferred, not
// chosen" marker to the confirmation banner exactly once.
package cookie
