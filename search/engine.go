package search

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/musicmaps/musicmaps-backend/models"
	"github.com/musicmaps/musicmaps-backend/repository"
)

// Catalog is the read surface the engine needs from the catalog
// store. The engine never mutates the catalog.
type Catalog interface {
	AllShows() (*repository.ShowCursor, error)
	FindVenueByID(id uint) (*models.Venue, error)
}

// MatchedEvent is one search result: a show plus its resolved venue.
// StartDatetime is returned as stored; the engine does not parse it.
type MatchedEvent struct {
	Name          string  `json:"name"`
	StartDatetime string  `json:"start_datetime"`
	VenueName     string  `json:"venue_name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// Engine answers discovery queries over the catalog.
type Engine struct {
	catalog Catalog
	log     *logrus.Entry
}

// NewEngine creates a search engine reading from catalog.
func NewEngine(catalog Catalog) *Engine {
	return &Engine{
		catalog: catalog,
		log:     logrus.WithField("component", "search"),
	}
}

// Search returns the shows whose name matches query and whose venue
// lies inside the bounding box of radiusMiles around origin, in
// catalog enumeration order. Shows whose venue cannot be resolved are
// excluded rather than failing the search. An origin of {-1, -1} is
// handled like any other; it simply matches (almost) nothing.
func (e *Engine) Search(query string, radiusMiles float64, origin models.Location) ([]MatchedEvent, error) {
	delta := MilesToDegrees(radiusMiles)
	minLat := origin.Latitude - delta
	maxLat := origin.Latitude + delta
	minLng := origin.Longitude - delta
	maxLng := origin.Longitude + delta

	log := e.log.WithField("search_id", uuid.New().String())

	cursor, err := e.catalog.AllShows()
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var results []MatchedEvent
	for cursor.Next() {
		show, err := cursor.Show()
		if err != nil {
			return nil, err
		}

		venue, err := e.catalog.FindVenueByID(show.VenueID)
		if err != nil {
			// a dangling or unreadable venue excludes the show, it
			// never fails the whole search
			if !errors.Is(err, repository.ErrNotFound) {
				log.WithError(err).WithField("show_id", show.ID).Warn("venue lookup failed, skipping show")
			}
			continue
		}

		if !nameMatches(query, show.Name) {
			continue
		}
		if venue.Latitude < minLat || venue.Latitude > maxLat ||
			venue.Longitude < minLng || venue.Longitude > maxLng {
			continue
		}

		results = append(results, MatchedEvent{
			Name:          show.Name,
			StartDatetime: show.StartDatetime,
			VenueName:     venue.Name,
			Latitude:      venue.Latitude,
			Longitude:     venue.Longitude,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"query":   query,
		"radius":  radiusMiles,
		"matches": len(results),
	}).Debug("search completed")
	return results, nil
}

// nameMatches implements the bidirectional token/substring rule: a
// show matches if any whitespace token of the query occurs in the
// full show name, or any token of the show name occurs in the full
// query. An empty query has zero tokens and therefore matches
// nothing; callers wanting "all shows" must special-case that
// upstream. Very short tokens over-match. Both behaviors are pinned
// pending a product decision.
func nameMatches(query, showName string) bool {
	for _, word := range strings.Fields(query) {
		if strings.Contains(showName, word) {
			return true
		}
	}
	for _, word := range strings.Fields(showName) {
		if strings.Contains(query, word) {
			return true
		}
	}
	return false
}
