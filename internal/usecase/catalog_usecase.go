package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// ProductInput defines the data for creating or updating a product.
type ProductInput struct {
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	IsAvailable   bool
	Category      string
	ImageURL      string
}

// OfferInput defines the data for creating or updating an offer.
type OfferInput struct {
	Title              string
	Description        string
	DiscountPercentage float64
	ValidUntil         *time.Time
	IsActive           bool
}

// CatalogUsecase defines the interface for vendor product and offer management.
// Mutations are restricted to the owning vendor.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, vendorID uuid.UUID, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, vendorID, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, vendorID, productID uuid.UUID) error

	// ListProducts returns a vendor's products. availableOnly hides
	// out-of-stock and disabled products for customer-facing views.
	ListProducts(ctx context.Context, vendorID uuid.UUID, availableOnly bool) ([]*entity.Product, error)

	CreateOffer(ctx context.Context, vendorID uuid.UUID, input *OfferInput) (*entity.Offer, error)
	UpdateOffer(ctx context.Context, vendorID, offerID uuid.UUID, input *OfferInput) (*entity.Offer, error)
	DeleteOffer(ctx context.Context, vendorID, offerID uuid.UUID) error

	// ListOffers returns a vendor's offers. activeOnly hides disabled
	// offers for customer-facing views.
	ListOffers(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*entity.Offer, error)
}
