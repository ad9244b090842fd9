package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteVendorModel mirrors the 'favorite_vendors' table. The
// (customer_id, vendor_id) pair carries a unique composite index.
type FavoriteVendorModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_customer_vendor"`
	VendorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_customer_vendor"`
	CreatedAt  time.Time

	Vendor *VendorProfileModel `gorm:"foreignKey:VendorID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteVendorModel) TableName() string {
	return "favorite_vendors"
}
