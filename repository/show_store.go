package repository

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/musicmaps/musicmaps-backend/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// InsertShow creates a new show at an existing venue and returns its
// allocated ID. Each name in artistNames is resolved by exact
// case-sensitive lookup; names with no matching artist get a fresh
// "unknown" artist row (genre unset, member count -1, text fields
// empty). One artist-show link is created per name. The whole batch
// is one critical section, so concurrent readers never see a show
// without its links.
func (s *CatalogStore) InsertShow(name string, venueID uint, website, pictureURL string, artistNames []string, startDatetime, endDatetime string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	if err := s.DB.Model(&models.Venue{}).Where("id = ?", venueID).Count(&n).Error; err != nil {
		return 0, storageError("check venue reference", err)
	}
	if n == 0 {
		return 0, ErrReferentialIntegrity
	}

	show := models.Show{
		ID:            s.Allocator.Next(KindShow),
		Name:          name,
		Website:       website,
		PictureURL:    pictureURL,
		VenueID:       venueID,
		StartDatetime: startDatetime,
		EndDatetime:   endDatetime,
	}
	if err := s.DB.Create(&show).Error; err != nil {
		return 0, storageError("insert show", err)
	}

	for _, artistName := range artistNames {
		artistID, err := s.findArtistIDByNameLocked(artistName)
		if errors.Is(err, ErrNotFound) {
			artistID, err = s.insertArtistLocked(artistName, nil, models.UnknownMemberCount, "", "", "", "", "")
		}
		if err != nil {
			return 0, fmt.Errorf("resolving artist %q for show: %w", artistName, err)
		}

		link := models.ArtistShowLink{
			ID:       s.Allocator.Next(KindArtistShow),
			ArtistID: artistID,
			ShowID:   show.ID,
		}
		if err := s.DB.Create(&link).Error; err != nil {
			return 0, storageError("insert artist-show link", err)
		}
	}
	return show.ID, nil
}

// DeleteShow removes a show and every artist-show link that
// references it, leaving no dangling links. Returns ErrNotFound if
// the show does not exist.
func (s *CatalogStore) DeleteShow(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.DB.Delete(&models.Show{}, id)
	if result.Error != nil {
		return storageError("delete show", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	if err := s.DB.Where("show_id = ?", id).Delete(&models.ArtistShowLink{}).Error; err != nil {
		return storageError("cascade delete show links", err)
	}
	return nil
}

// ShowCursor iterates shows one row at a time without materializing
// the table. Callers must Close it and should check Err after the
// final Next.
type ShowCursor struct {
	rows *sql.Rows
}

// Next advances to the next show; it returns false when the scan is
// exhausted or fails.
func (c *ShowCursor) Next() bool {
	return c.rows.Next()
}

// Show scans the current row.
func (c *ShowCursor) Show() (models.Show, error) {
	var show models.Show
	err := c.rows.Scan(
		&show.ID, &show.Name, &show.Website, &show.PictureURL,
		&show.VenueID, &show.StartDatetime, &show.EndDatetime, &show.Attendance,
	)
	if err != nil {
		return models.Show{}, storageError("scan show row", err)
	}
	return show, nil
}

// Err reports any error that ended iteration early.
func (c *ShowCursor) Err() error {
	return c.rows.Err()
}

// Close releases the underlying rows.
func (c *ShowCursor) Close() error {
	return c.rows.Close()
}

// AllShows returns a lazy cursor over every show in storage
// enumeration order. It is the read path the search engine scans.
// The query starts under the read lock, so under WAL the cursor sees
// a snapshot that never includes a partially inserted show batch.
func (s *CatalogStore) AllShows() (*ShowCursor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sqlDB, err := s.DB.DB()
	if err != nil {
		return nil, storageError("get sql.DB for show scan", err)
	}

	queryBuilder := psql.Select(
		"id", "name", "website", "picture_url",
		"venue_id", "start_datetime", "end_datetime", "attendance",
	).From("shows").OrderBy("id ASC")

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, storageError("build show scan query", err)
	}

	rows, err := sqlDB.Query(sqlStr, args...)
	if err != nil {
		return nil, storageError("scan shows", err)
	}
	return &ShowCursor{rows: rows}, nil
}
