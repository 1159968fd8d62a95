package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/musicmaps/musicmaps-backend/models"
)

// InsertArtist creates a new artist and returns its allocated ID. A
// nil genreID, a memberCount of models.UnknownMemberCount, and empty
// text fields are all valid; that combination is the "unknown artist"
// created while inserting a show. A non-nil genreID must reference an
// existing genre.
func (s *CatalogStore) InsertArtist(name string, genreID *uint, memberCount int, website, pictureURL, town, state, zipCode string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertArtistLocked(name, genreID, memberCount, website, pictureURL, town, state, zipCode)
}

// insertArtistLocked is the lock-free body shared with the show
// insert path, which already holds the store mutex.
func (s *CatalogStore) insertArtistLocked(name string, genreID *uint, memberCount int, website, pictureURL, town, state, zipCode string) (uint, error) {
	if genreID != nil {
		var n int64
		if err := s.DB.Model(&models.Genre{}).Where("id = ?", *genreID).Count(&n).Error; err != nil {
			return 0, storageError("check genre reference", err)
		}
		if n == 0 {
			return 0, ErrReferentialIntegrity
		}
	}

	artist := models.Artist{
		ID:          s.Allocator.Next(KindArtist),
		Name:        name,
		GenreID:     genreID,
		MemberCount: memberCount,
		Website:     website,
		PictureURL:  pictureURL,
		Town:        town,
		State:       state,
		ZipCode:     zipCode,
	}
	if err := s.DB.Create(&artist).Error; err != nil {
		return 0, storageError("insert artist", err)
	}
	return artist.ID, nil
}

// FindArtistIDByName returns the ID of the first artist whose name
// matches exactly (case-sensitive), in storage enumeration order, or
// ErrNotFound.
func (s *CatalogStore) FindArtistIDByName(name string) (uint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findArtistIDByNameLocked(name)
}

func (s *CatalogStore) findArtistIDByNameLocked(name string) (uint, error) {
	var artist models.Artist
	err := s.DB.Select("id").Where("name = ?", name).Order("id ASC").First(&artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, storageError("find artist by name", err)
	}
	return artist.ID, nil
}

// AllArtistsByID returns a mapping of artist ID to name for every
// artist, for picker UIs.
func (s *CatalogStore) AllArtistsByID() (map[uint]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var artists []models.Artist
	if err := s.DB.Select("id", "name").Find(&artists).Error; err != nil {
		return nil, storageError("list artists", err)
	}
	byID := make(map[uint]string, len(artists))
	for _, a := range artists {
		byID[a.ID] = a.Name
	}
	return byID, nil
}

// DeleteArtist removes an artist and every artist-show link that
// references it, leaving no dangling links. Returns ErrNotFound if
// the artist does not exist.
func (s *CatalogStore) DeleteArtist(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.DB.Delete(&models.Artist{}, id)
	if result.Error != nil {
		return storageError("delete artist", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	if err := s.DB.Where("artist_id = ?", id).Delete(&models.ArtistShowLink{}).Error; err != nil {
		return storageError("cascade delete artist links", err)
	}
	return nil
}
