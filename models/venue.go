package models

// UnsetCoordinate is the sentinel stored when a venue's latitude or
// longitude has not been provided.
const UnsetCoordinate = -1

// Venue represents a physical event location in the database using GORM.
// It corresponds to the 'venues' table.
type Venue struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Website       string  `gorm:"" json:"website,omitempty"`
	PictureURL    string  `gorm:"" json:"picture_url,omitempty"`
	StreetAddress string  `gorm:"" json:"street_address,omitempty"`
	Town          string  `gorm:"" json:"town,omitempty"`
	State         string  `gorm:"" json:"state,omitempty"`
	ZipCode       string  `gorm:"" json:"zip_code,omitempty"`
	Latitude      float64 `gorm:"not null;default:-1" json:"latitude"`
	Longitude     float64 `gorm:"not null;default:-1" json:"longitude"`

	// Relationships
	Shows []Show `gorm:"foreignKey:VenueID" json:"shows,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Venue) TableName() string {
	return "venues"
}
