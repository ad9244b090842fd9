package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bazaar/internal/domain/entity"
)

// ErrFavoriteNotFound is returned when a favorite entry cannot be found.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines persistence operations for favorite vendors.
type FavoriteRepository interface {
	// Create adds the vendor to the customer's favorites. Creating an
	// existing pair again surfaces a duplicated-key error.
	Create(ctx context.Context, favorite *entity.FavoriteVendor) error

	// Delete removes the (customer, vendor) pair. Returns
	// ErrFavoriteNotFound when the pair does not exist.
	Delete(ctx context.Context, customerID, vendorID uuid.UUID) error

	// Exists reports whether the vendor is favorited by the customer.
	Exists(ctx context.Context, customerID, vendorID uuid.UUID) (bool, error)

	// ListByCustomer returns the customer's favorites with the vendor
	// profile preloaded, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.FavoriteVendor, error)
}
