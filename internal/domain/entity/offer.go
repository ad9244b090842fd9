package entity

import (
	"time"

	"github.com/google/uuid"
)

// Offer is a vendor-published discount or promotion.
type Offer struct {
	ID                 uuid.UUID
	VendorID           uuid.UUID
	Title              string
	Description        string
	DiscountPercentage float64 // 0 to 100.
	ValidUntil         *time.Time
	IsActive           bool
	CreatedAt          time.Time
}
