package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Items is stored as opaque JSONB.
type OrderModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	CustomerID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status          string         `gorm:"type:varchar(20);not null;default:'pending'"`
	TotalAmount     float64        `gorm:"type:decimal(12,2);not null;check:total_amount >= 0"`
	Items           datatypes.JSON `gorm:"type:jsonb;not null"`
	DeliveryAddress string         `gorm:"type:text"`
	DeliveryLat     *float64       `gorm:"type:decimal(10,7)"`
	DeliveryLng     *float64       `gorm:"type:decimal(10,7)"`
	Notes           string         `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
