package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel mirrors the 'offers' table.
type OfferModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Title              string    `gorm:"type:varchar(100);not null"`
	Description        string    `gorm:"type:text"`
	DiscountPercentage float64   `gorm:"type:decimal(5,2);not null;check:discount_percentage >= 0 AND discount_percentage <= 100"`
	ValidUntil         *time.Time
	IsActive           bool `gorm:"not null;default:true"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
