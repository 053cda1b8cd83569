package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/localekit/pkg/geo"
)

// geoEnvelope is the tagged success/error response of the /api/geo endpoint.
type geoEnvelope struct {
	Success bool     `json:"success"`
	Data    *geoData `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type geoData struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
}

// Geo reports the visitor's country as detected from edge headers. Unlike
// locale resolution this endpoint has no fallback of its own, so both
// failure modes surface as structured 404s with distinct messages.
func Geo(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := geo.Resolve(r)
		if err == nil {
			writeJSON(w, http.StatusOK, geoEnvelope{
				Success: true,
				Data:    &geoData{CountryCode: rec.Code, CountryName: rec.Name},
			})
			return
		}

		msg := "Country not detected from request headers"
		var unknown *geo.UnknownCountryError
		if errors.As(err, &unknown) {
			msg = "Unknown country code: " + unknown.Code
		}

		log.DebugContext(r.Context(), "geo lookup failed", slog.Any("error", err))
		writeJSON(w, http.StatusNotFound, geoEnvelope{Success: false, Error: msg})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
