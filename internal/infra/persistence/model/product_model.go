package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Description   string    `gorm:"type:text"`
	Price         float64   `gorm:"type:decimal(10,2);not null;check:price >= 0"`
	StockQuantity int       `gorm:"not null;default:0;check:stock_quantity >= 0"`
	IsAvailable   bool      `gorm:"not null;default:true"`
	Category      string    `gorm:"type:varchar(50)"`
	ImageURL      string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
