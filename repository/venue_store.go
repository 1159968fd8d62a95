package repository

import (
	"errors"

	"github.com/facette/natsort"
	"gorm.io/gorm"

	"github.com/musicmaps/musicmaps-backend/models"
)

// InsertVenue creates a new venue and returns its allocated ID.
// Latitude and longitude of models.UnsetCoordinate mark a venue whose
// position has not been resolved yet.
func (s *CatalogStore) InsertVenue(name, website, pictureURL, streetAddress, town, state, zipCode string, latitude, longitude float64) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	venue := models.Venue{
		ID:            s.Allocator.Next(KindVenue),
		Name:          name,
		Website:       website,
		PictureURL:    pictureURL,
		StreetAddress: streetAddress,
		Town:          town,
		State:         state,
		ZipCode:       zipCode,
		Latitude:      latitude,
		Longitude:     longitude,
	}
	if err := s.DB.Create(&venue).Error; err != nil {
		return 0, storageError("insert venue", err)
	}
	return venue.ID, nil
}

// FindVenueByID retrieves a venue by its ID, or ErrNotFound.
func (s *CatalogStore) FindVenueByID(id uint) (*models.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var venue models.Venue
	err := s.DB.First(&venue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError("find venue by id", err)
	}
	return &venue, nil
}

// AllVenueNames returns every venue name in storage enumeration order.
func (s *CatalogStore) AllVenueNames() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	err := s.DB.Model(&models.Venue{}).Order("id ASC").Pluck("name", &names).Error
	if err != nil {
		return nil, storageError("list venue names", err)
	}
	return names, nil
}

// SortedVenueNames returns venue names in natural sort order, for
// picker UIs.
func (s *CatalogStore) SortedVenueNames() ([]string, error) {
	names, err := s.AllVenueNames()
	if err != nil {
		return nil, err
	}
	natsort.Sort(names)
	return names, nil
}

// AllVenuesByID returns a mapping of venue ID to name for every venue.
func (s *CatalogStore) AllVenuesByID() (map[uint]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var venues []models.Venue
	if err := s.DB.Select("id", "name").Find(&venues).Error; err != nil {
		return nil, storageError("list venues", err)
	}
	byID := make(map[uint]string, len(venues))
	for _, v := range venues {
		byID[v.ID] = v.Name
	}
	return byID, nil
}
