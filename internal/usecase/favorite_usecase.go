package usecase

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// FavoriteUsecase defines the interface for customer favorite vendors.
type FavoriteUsecase interface {
	// AddFavorite marks the vendor as a favorite. Adding an existing
	// favorite is a no-op.
	AddFavorite(ctx context.Context, customerID, vendorID uuid.UUID) error

	// RemoveFavorite unmarks the vendor. Removing a non-favorite is a
	// no-op.
	RemoveFavorite(ctx context.Context, customerID, vendorID uuid.UUID) error

	// IsFavorite reports whether the vendor is currently favorited.
	IsFavorite(ctx context.Context, customerID, vendorID uuid.UUID) (bool, error)

	// ListFavorites returns the customer's favorites with vendor
	// profiles attached, newest first.
	ListFavorites(ctx context.Context, customerID uuid.UUID) ([]*entity.FavoriteVendor, error)
}
