package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bazaar/internal/domain/entity"
)

// ErrOfferNotFound is returned when an offer cannot be found.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository defines persistence operations for offers.
type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID returns the offer. Returns ErrOfferNotFound when no row
	// matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// ListByVendor returns the vendor's offers, newest first. When
	// activeOnly is set, inactive offers are filtered out.
	ListByVendor(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*entity.Offer, error)

	Update(ctx context.Context, offer *entity.Offer) error

	Delete(ctx context.Context, id uuid.UUID) error
}
