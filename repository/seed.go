package repository

import (
	"fmt"

	"github.com/musicmaps/musicmaps-backend/models"
)

// seedGenres is the fixed genre reference list.
var seedGenres = []string{
	"Rock 'n Roll", "Pop", "Heavy Metal", "Rap", "Country", "Punk",
	"R & B", "Jazz", "Classical", "Alternative", "Hip Hop", "Soul",
	"Reggae", "Techno", "Grunge", "EDM", "Hard Rock", "Blues",
}

type seedVenue struct {
	name      string
	website   string
	latitude  float64
	longitude float64
}

// seedVenues is the fixed venue reference list, Ithaca-area venues
// with their coordinates.
var seedVenues = []seedVenue{
	{"Hangar Theatre", "http://www.hangartheatre.org/", 42.4553429, -76.51731889999999},
	{"The Haunt", "http://www.thehaunt.com/", 42.4514511, -76.5051489},
	{"The Dock", "http://thedockithaca.com/", 42.4519932, -76.5133232},
	{"Lot 10", "http://www.lot-10.com/", 42.4391302, -76.4992535},
	{"State Theatre of Ithaca", "http://www.stateofithaca.com/", 42.4392627, -76.49960229999999},
	{"Trumansburg Fairground", "http://www.tburgevents.com/venue/trumansburg-fair-grounds/", 42.5360253, -76.6466288},
	{"Bernie Milton Pavilion", "http://ithacafestival.org/", 42.4393319, -76.49696639999999},
	{"Ithaca College", "http://www.ithaca.edu", 42.4217, -76.4986},
}

type seedShow struct {
	name       string
	website    string
	venueIndex int
}

// seedShows is the fixed show reference list; venueIndex refers to
// seedVenues in seeding order (1-based), not to a database ID. The
// actual venue IDs depend on the allocator state at seeding time.
var seedShows = []seedShow{
	{"Grassroots 2016", "http://www.grassrootsfest.org/festival/", 1},
	{"Grassroots 2015", "http://www.grassrootsfest.org/festival/", 2},
	{"Ithaca Festival 2016", "http://www.grassrootsfest.org/festival/", 3},
	{"Ithaca AppleFest 2016", "http://www.downtownithaca.com/ithaca-events/Apple%20Harvest%20Festival%20Presented%20by%20Tompkins%20Trust", 4},
	{"John Brown's Body", "http://dansmallspresents.com/john-browns-body", 5},
	{"The Blind Spots: Willy Wonka and The Chocolate Factory", "http://dansmallspresents.com/the-blind-spots-willy-wonka-and-the-chocolate-factory", 6},
	{"Driftwood", "http://dansmallspresents.com/driftwood", 7},
	{"Jimkata", "http://dansmallspresents.com/jimkata", 8},
	{"Big Mean Sound Machine", "http://dansmallspresents.com/big-mean-sound-machine", 1},
	{"Ben Harper & The Innocent Criminals", "http://dansmallspresents.com/ben-harper-the-innocent-criminals", 2},
}

// seedReferenceData inserts the fixed genre, venue, and show lists
// into an empty store, allocating every ID through the allocator.
// Caller holds the store mutex.
func (s *CatalogStore) seedReferenceData() error {
	for _, name := range seedGenres {
		genre := models.Genre{ID: s.Allocator.Next(KindGenre), Name: name}
		if err := s.DB.Create(&genre).Error; err != nil {
			return fmt.Errorf("seeding genre %q: %v", name, err)
		}
	}
	venueIDs := make([]uint, 0, len(seedVenues))
	for _, v := range seedVenues {
		venue := models.Venue{
			ID:        s.Allocator.Next(KindVenue),
			Name:      v.name,
			Website:   v.website,
			Latitude:  v.latitude,
			Longitude: v.longitude,
		}
		if err := s.DB.Create(&venue).Error; err != nil {
			return fmt.Errorf("seeding venue %q: %v", v.name, err)
		}
		venueIDs = append(venueIDs, venue.ID)
	}
	for _, sh := range seedShows {
		show := models.Show{
			ID:      s.Allocator.Next(KindShow),
			Name:    sh.name,
			Website: sh.website,
			VenueID: venueIDs[sh.venueIndex-1],
		}
		if err := s.DB.Create(&show).Error; err != nil {
			return fmt.Errorf("seeding show %q: %v", sh.name, err)
		}
	}
	return nil
}
