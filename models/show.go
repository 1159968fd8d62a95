package models

// Show represents a scheduled event in the database using GORM.
// It corresponds to the 'shows' table. Start and end timestamps are
// stored as opaque text; the catalog never parses or validates them.
type Show struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	Website       string `gorm:"" json:"website,omitempty"`
	PictureURL    string `gorm:"" json:"picture_url,omitempty"`
	VenueID       uint   `gorm:"not null" json:"venue_id"` // FK -> venues
	StartDatetime string `gorm:"" json:"start_datetime,omitempty"`
	EndDatetime   string `gorm:"" json:"end_datetime,omitempty"`
	Attendance    int    `gorm:"not null;default:0" json:"attendance"`

	// Relationships
	Venue *Venue           `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	Links []ArtistShowLink `gorm:"foreignKey:ShowID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName explicitly sets the table name for GORM.
func (Show) TableName() string {
	return "shows"
}
