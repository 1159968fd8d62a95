package models

// Location is a resolved latitude/longitude pair used as a search
// origin. A location whose coordinates are both UnsetCoordinate is the
// conventional "could not resolve" value; the search engine treats it
// as a normal (but practically unmatching) origin.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UnresolvedLocation returns the {-1, -1} sentinel delivered when
// geocoding fails.
func UnresolvedLocation() Location {
	return Location{Latitude: UnsetCoordinate, Longitude: UnsetCoordinate}
}

// IsSet reports whether either coordinate carries a real value.
func (l Location) IsSet() bool {
	return l.Latitude != UnsetCoordinate || l.Longitude != UnsetCoordinate
}
