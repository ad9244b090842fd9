package entity

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteVendor is the customer-to-vendor favorite relationship; its
// existence means "favorited". The (CustomerID, VendorID) pair is unique.
type FavoriteVendor struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	VendorID   uuid.UUID
	Vendor     *VendorProfile // Preloaded for listings; nil otherwise.
	CreatedAt  time.Time
}
