package entity

import (
	"time"

	"github.com/google/uuid"
)

// VendorProfile holds data specific to the "vendor" role. The metric
// counters (TotalOrders, TotalSales) are monotonic and updated in the same
// transaction as the order status write that causes them.
type VendorProfile struct {
	AccountID       uuid.UUID // Foreign key to the owning Account; also the primary key.
	ShopName        string
	Category        string
	Description     string
	BusinessType    string
	ContactInfo     string
	ProfileImage    string
	LocationLat     *float64 // Stored but unused algorithmically.
	LocationLng     *float64
	LocationAddress string
	IsOnline        bool    // Vendor-controlled visibility toggle.
	Rating          float64 // 0 to 5.
	TotalOrders     int     // Count of completed orders.
	TotalSales      float64 // Sum of completed order amounts.
	ActiveCustomers int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CustomerProfile holds data specific to the "customer" role.
type CustomerProfile struct {
	AccountID          uuid.UUID // Foreign key to the owning Account; also the primary key.
	Name               string
	ProfileImage       string
	SavedAddress       string
	LocationLat        *float64
	LocationLng        *float64
	LanguagePreference string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
