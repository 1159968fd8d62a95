package repository

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/musicmaps/musicmaps-backend/database"
	"github.com/musicmaps/musicmaps-backend/models"
)

// CatalogStore handles database operations for the five catalog
// entities. Mutators serialize on the store lock; a show insert
// together with its auto-created artists and link rows is a single
// critical section. Readers take the shared side, so they run
// concurrently with each other but never observe a half-assigned
// batch.
type CatalogStore struct {
	DB        *gorm.DB
	Allocator *Allocator

	mu  sync.RWMutex
	log *logrus.Entry
}

// NewCatalogStore creates a store over an already-opened GORM
// database. The store owns its allocator; call Initialize before any
// other operation.
func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{
		DB:        db,
		Allocator: NewAllocator(),
		log:       logrus.WithField("component", "catalog"),
	}
}

// Initialize prepares the catalog tables and seeds the fixed
// reference data (genres, venues, shows). With resetExisting the five
// tables are dropped and rebuilt first; without it an existing
// catalog is kept as-is and the allocator is primed from the highest
// IDs on disk. Seeding only runs against an empty store, so calling
// Initialize twice yields the same row sets as calling it once.
func (s *CatalogStore) Initialize(resetExisting bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if resetExisting {
		if err := database.DropCatalogTables(s.DB); err != nil {
			return fmt.Errorf("%w: %v", ErrStorageInit, err)
		}
	}
	if err := database.AutoMigrateModels(s.DB); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageInit, err)
	}

	var genreCount, venueCount int64
	if err := s.DB.Model(&models.Genre{}).Count(&genreCount).Error; err != nil {
		return fmt.Errorf("%w: counting genres: %v", ErrStorageInit, err)
	}
	if err := s.DB.Model(&models.Venue{}).Count(&venueCount).Error; err != nil {
		return fmt.Errorf("%w: counting venues: %v", ErrStorageInit, err)
	}
	if genreCount == 0 && venueCount == 0 {
		if err := s.seedReferenceData(); err != nil {
			return fmt.Errorf("%w: %v", ErrStorageInit, err)
		}
		s.log.Info("seeded catalog reference data")
		return nil
	}
	// genres and venues are never deletable, so one empty and one
	// populated means an earlier seed run died partway through
	if genreCount == 0 || venueCount == 0 {
		return fmt.Errorf("%w: catalog is partially seeded, reinitialize with reset", ErrStorageInit)
	}

	if err := s.primeAllocator(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageInit, err)
	}
	s.log.Info("catalog already seeded, skipping")
	return nil
}

// primeAllocator lifts every counter to the highest ID present so new
// inserts never collide with rows kept from a previous process.
func (s *CatalogStore) primeAllocator() error {
	tables := []struct {
		kind  EntityKind
		model interface{}
	}{
		{KindGenre, &models.Genre{}},
		{KindArtist, &models.Artist{}},
		{KindVenue, &models.Venue{}},
		{KindShow, &models.Show{}},
		{KindArtistShow, &models.ArtistShowLink{}},
	}
	for _, t := range tables {
		var maxID int64
		err := s.DB.Model(t.model).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error
		if err != nil {
			return fmt.Errorf("priming %s counter: %v", t.kind, err)
		}
		if maxID > 0 {
			s.Allocator.Prime(t.kind, uint(maxID))
		}
	}
	return nil
}
