package models

// UnknownMemberCount is the sentinel stored when an artist's member
// count has not been provided, e.g. for artists auto-created while
// inserting a show.
const UnknownMemberCount = -1

// Artist represents a musical act in the database using GORM.
// It corresponds to the 'artists' table.
type Artist struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	GenreID     *uint  `gorm:"" json:"genre_id,omitempty"` // Nullable FK -> genres
	MemberCount int    `gorm:"not null;default:-1" json:"member_count"`
	Website     string `gorm:"" json:"website,omitempty"`
	PictureURL  string `gorm:"" json:"picture_url,omitempty"`
	Town        string `gorm:"" json:"town,omitempty"`
	State       string `gorm:"" json:"state,omitempty"`
	ZipCode     string `gorm:"" json:"zip_code,omitempty"`

	// Relationships
	Genre *Genre           `gorm:"foreignKey:GenreID" json:"genre,omitempty"`
	Links []ArtistShowLink `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName explicitly sets the table name for GORM.
func (Artist) TableName() string {
	return "artists"
}
