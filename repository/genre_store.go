package repository

import (
	"github.com/facette/natsort"

	"github.com/musicmaps/musicmaps-backend/models"
)

// InsertGenre creates a new genre and returns its allocated ID.
func (s *CatalogStore) InsertGenre(name string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	genre := models.Genre{ID: s.Allocator.Next(KindGenre), Name: name}
	if err := s.DB.Create(&genre).Error; err != nil {
		return 0, storageError("insert genre", err)
	}
	return genre.ID, nil
}

// AllGenreNames returns every genre name in storage enumeration order.
func (s *CatalogStore) AllGenreNames() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	err := s.DB.Model(&models.Genre{}).Order("id ASC").Pluck("name", &names).Error
	if err != nil {
		return nil, storageError("list genre names", err)
	}
	return names, nil
}

// SortedGenreNames returns genre names in natural sort order, for
// picker UIs.
func (s *CatalogStore) SortedGenreNames() ([]string, error) {
	names, err := s.AllGenreNames()
	if err != nil {
		return nil, err
	}
	natsort.Sort(names)
	return names, nil
}
