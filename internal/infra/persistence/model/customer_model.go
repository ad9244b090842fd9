package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerProfileModel mirrors the 'customers' table. AccountID references accounts.id (UUID).
type CustomerProfileModel struct {
	AccountID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name               string    `gorm:"type:varchar(100);not null"`
	ProfileImage       string    `gorm:"type:text"`
	SavedAddress       string    `gorm:"type:text"`
	LocationLat        *float64  `gorm:"type:decimal(10,7)"`
	LocationLng        *float64  `gorm:"type:decimal(10,7)"`
	LanguagePreference string    `gorm:"type:varchar(10);not null;default:'en'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerProfileModel) TableName() string {
	return "customers"
}
