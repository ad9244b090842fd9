package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bazaar/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order cannot be found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error

	// FindByID returns the order. Returns ErrOrderNotFound when no row
	// matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus persists the new lifecycle status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// ListByVendor returns the vendor's orders, newest first.
	ListByVendor(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// ListByCustomer returns the customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// CountByVendor returns the vendor's total order count across all
	// statuses.
	CountByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)

	// CountByVendorAndStatus returns how many of the vendor's orders
	// currently hold the given status.
	CountByVendorAndStatus(ctx context.Context, vendorID uuid.UUID, status entity.OrderStatus) (int64, error)
}
