package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bazaar/internal/domain/entity"
)

// ErrProductNotFound is returned when a product cannot be found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error

	// FindByID returns the product. Returns ErrProductNotFound when no
	// row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListByVendor returns the vendor's products, newest first. When
	// availableOnly is set, unavailable products are filtered out.
	ListByVendor(ctx context.Context, vendorID uuid.UUID, availableOnly bool) ([]*entity.Product, error)

	Update(ctx context.Context, product *entity.Product) error

	Delete(ctx context.Context, id uuid.UUID) error
}
