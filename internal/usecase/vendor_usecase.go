package usecase

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// VendorProfileInput defines the mutable vendor profile fields.
type VendorProfileInput struct {
	ShopName        string
	Category        string
	Description     string
	BusinessType    string
	ContactInfo     string
	ProfileImage    string
	LocationLat     *float64
	LocationLng     *float64
	LocationAddress string
}

// VendorDashboard aggregates what a vendor sees on their home screen.
type VendorDashboard struct {
	Profile         *entity.VendorProfile
	RecentOrders    []*entity.Order
	TotalOrders     int64
	PendingOrders   int64
	AcceptedOrders  int64
	CompletedOrders int64
	ProductCount    int
	SuccessRate     float64 // completed orders over all orders, percent
	UnreadMessages  int64
}

// Storefront is the customer-facing view of a single vendor.
type Storefront struct {
	Profile  *entity.VendorProfile
	Products []*entity.Product
	Offers   []*entity.Offer
}

// VendorUsecase defines the interface for vendor-facing profile and
// discovery operations.
type VendorUsecase interface {
	// GetDashboard aggregates the vendor's profile, recent orders and
	// unread message count.
	GetDashboard(ctx context.Context, vendorID uuid.UUID) (*VendorDashboard, error)

	// UpdateProfile overwrites the vendor's mutable profile fields.
	UpdateProfile(ctx context.Context, vendorID uuid.UUID, input *VendorProfileInput) (*entity.VendorProfile, error)

	// SetOnline flips the storefront visibility flag.
	SetOnline(ctx context.Context, vendorID uuid.UUID, isOnline bool) error

	// ListDirectory returns online vendors for customer discovery,
	// optionally filtered by category.
	ListDirectory(ctx context.Context, category string, limit, offset int) ([]*entity.VendorProfile, error)

	// GetStorefront returns a vendor's profile with available products
	// and active offers.
	GetStorefront(ctx context.Context, vendorID uuid.UUID) (*Storefront, error)

	// GenerateStorefrontQR renders a shareable QR code for the vendor's
	// storefront.
	GenerateStorefrontQR(ctx context.Context, vendorID uuid.UUID) ([]byte, error)
}
