package repository

import "github.com/musicmaps/musicmaps-backend/models"

// CatalogStoreInterface defines the catalog operations consumed by
// the UI layers that sit outside this library.
type CatalogStoreInterface interface {
	Initialize(resetExisting bool) error
	InsertGenre(name string) (uint, error)
	InsertArtist(name string, genreID *uint, memberCount int, website, pictureURL, town, state, zipCode string) (uint, error)
	InsertVenue(name, website, pictureURL, streetAddress, town, state, zipCode string, latitude, longitude float64) (uint, error)
	InsertShow(name string, venueID uint, website, pictureURL string, artistNames []string, startDatetime, endDatetime string) (uint, error)
	FindArtistIDByName(name string) (uint, error)
	FindVenueByID(id uint) (*models.Venue, error)
	AllGenreNames() ([]string, error)
	SortedGenreNames() ([]string, error)
	AllVenueNames() ([]string, error)
	SortedVenueNames() ([]string, error)
	AllVenuesByID() (map[uint]string, error)
	AllArtistsByID() (map[uint]string, error)
	AllShows() (*ShowCursor, error)
	DeleteArtist(id uint) error
	DeleteShow(id uint) error
}

var _ CatalogStoreInterface = (*CatalogStore)(nil)
