package models

// ArtistShowLink joins artists to the shows they play. It corresponds
// to the 'artist_shows' table. Rows are removed whenever either
// principal is deleted; the catalog store enforces the cascade itself
// rather than relying on the substrate's FK enforcement.
type ArtistShowLink struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ArtistID uint `gorm:"not null;index" json:"artist_id"` // FK -> artists
	ShowID   uint `gorm:"not null;index" json:"show_id"`   // FK -> shows
}

// TableName explicitly sets the table name for GORM.
func (ArtistShowLink) TableName() string {
	return "artist_shows"
}
