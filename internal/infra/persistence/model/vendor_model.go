package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorProfileModel mirrors the 'vendors' table. AccountID references accounts.id (UUID).
type VendorProfileModel struct {
	AccountID       uuid.UUID `gorm:"primaryKey;type:uuid"`
	ShopName        string    `gorm:"type:varchar(100);not null"`
	Category        string    `gorm:"type:varchar(50);not null"`
	Description     string    `gorm:"type:text"`
	BusinessType    string    `gorm:"type:varchar(50)"`
	ContactInfo     string    `gorm:"type:varchar(255)"`
	ProfileImage    string    `gorm:"type:text"`
	LocationLat     *float64  `gorm:"type:decimal(10,7)"`
	LocationLng     *float64  `gorm:"type:decimal(10,7)"`
	LocationAddress string    `gorm:"type:text"`
	IsOnline        bool      `gorm:"not null;default:false"`
	Rating          float64   `gorm:"type:decimal(3,2);not null;default:0"`
	TotalOrders     int       `gorm:"not null;default:0"`
	TotalSales      float64   `gorm:"type:decimal(12,2);not null;default:0"`
	ActiveCustomers int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendors"
}
