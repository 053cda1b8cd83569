package geo

import (
	"errors"
	"fmt"
)

// ErrNoGeoSignal indicates no recognized geo header was present on the
// request. Distinct from ErrUnknownCountry so callers can report "not
// detected" separately from "detected but unmapped".
var ErrNoGeoSignal = errors.New("geo.no_signal")

// UnknownCountryError indicates a geo header carried a code missing from the
// country directory. It keeps the offending code for boundary error messages.
type UnknownCountryError struct {
	Code string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("geo: unknown country code %q", e.Code)
}

// IsUnknownCountry reports whether err is an UnknownCountryError.
func IsUnknownCountry(err error) bool {
	var e *UnknownCountryError
	return errors.As(err, &e)
}
