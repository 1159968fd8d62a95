package models

// Genre represents a musical genre in the database using GORM.
// It corresponds to the 'genres' table.
type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

// TableName explicitly sets the table name for GORM.
func (Genre) TableName() string {
	return "genres"
}
