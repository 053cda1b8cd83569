// Package country provides the static directory of countries the site
// recognizes in network-level geo signals.
package country

import (
	"sort"
	"strings"
)

// Record is one directory entry.
type Record struct {
	// Code is the ISO 3166-1 alpha-2 code, always uppercase.
	Code string
	// Name is the English display name.
	Name string
}

// directory covers the markets the site serves plus the major sources of
// inbound traffic. Codes outside this table are valid input but resolve to
// nothing; only the /api/geo boundary reports them as errors.
var directory = map[string]string{
	"US": "United States",
	"GB": "United Kingdom",
	"CA": "Canada",
	"AU": "Australia",
	"NZ": "New Zealand",
	"CN": "China",
	"TW": "Taiwan",
	"HK": "Hong Kong",
	"MO": "Macao",
	"SG": "Singapore",
	"MY": "Malaysia",
	"JP": "Japan",
	"KR": "South Korea",
	"TH": "Thailand",
	"VN": "Vietnam",
	"MM": "Myanmar",
	"KH": "Cambodia",
	"LA": "Laos",
	"ID": "Indonesia",
	"PH": "Philippines",
	"IN": "India",
	"FR": "France",
	"DE": "Germany",
	"ES": "Spain",
	"IT": "Italy",
	"NL": "Netherlands",
	"MX": "Mexico",
	"AR": "Argentina",
	"BR": "Brazil",
	"RU": "Russia",
}

// Lookup resolves a country code case-insensitively. The returned record
// carries the normalized uppercase code.
func Lookup(code string) (Record, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	name, ok := directory[normalized]
	if !ok {
		return Record{}, false
	}
	return Record{Code: normalized, Name: name}, true
}

// Codes returns all directory codes in lexical order.
func Codes() []string {
	codes := make([]string, 0, len(directory))
	for code := range directory {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
