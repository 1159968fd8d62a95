package utils

import "regexp"

// zipCodeRegex accepts a 5-digit US zip code.
var zipCodeRegex = regexp.MustCompile(`^\d{5}$`)

// IsZipCode reports whether s is a valid 5-digit zip code. Queries
// that fail this check are never sent to the geocoder; callers use a
// device-reported location instead.
func IsZipCode(s string) bool {
	return zipCodeRegex.MatchString(s)
}
