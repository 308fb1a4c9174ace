package model

import (
	"time"

	"github.com/google/uuid"
)

// GeocodeEntryModel is the GORM-specific struct for the 'geocode_entries' table.
// One row per distinct raw address.
type GeocodeEntryModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	Address           string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	NormalizedAddress *string   `gorm:"type:text"`
	Latitude          *float64  `gorm:"type:decimal(9,6)"`
	Longitude         *float64  `gorm:"type:decimal(9,6)"`
	Resolved          bool      `gorm:"not null;default:false;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeocodeEntryModel) TableName() string {
	return "geocode_entries"
}
