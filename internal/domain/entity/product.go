package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product belongs to exactly one vendor and is only created or edited by
// its owning vendor.
type Product struct {
	ID            uuid.UUID
	VendorID      uuid.UUID
	Name          string
	Description   string
	Price         float64 // Non-negative currency amount.
	StockQuantity int     // Non-negative.
	IsAvailable   bool
	Category      string
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
