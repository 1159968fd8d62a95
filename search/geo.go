// Package search filters the catalog's shows by name match and a
// latitude/longitude bounding box around a resolved origin.
package search

// milesToKilometers and kilometersPerDegree are pinned: search results
// must stay compatible with the radii users already rely on, so the
// conversion below is reproduced with these exact constants.
const (
	milesToKilometers   = 0.621371
	kilometersPerDegree = 110.54
)

// MilesToDegrees converts a radius in miles to the degree delta used
// for a latitude/longitude bounding box. It is a flat-earth
// small-angle approximation: increasingly wrong at large radii and
// near the poles, acceptable for local event search.
func MilesToDegrees(miles float64) float64 {
	return (miles * milesToKilometers) / kilometersPerDegree
}
