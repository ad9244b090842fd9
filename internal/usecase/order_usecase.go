package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// PlaceOrderInput defines the data required to place a new order.
type PlaceOrderInput struct {
	VendorID        uuid.UUID
	TotalAmount     float64
	Items           json.RawMessage
	DeliveryAddress string
	DeliveryLat     *float64
	DeliveryLng     *float64
	Notes           string
}

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	// PlaceOrder creates a pending order for the customer.
	PlaceOrder(ctx context.Context, customerID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	// CancelOrder moves a pending order to cancelled. Only the owning
	// customer may cancel, and only while the order is still pending.
	CancelOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error)

	// UpdateStatus applies a vendor-initiated transition (accept,
	// reject, complete). Completing an order also increments the
	// vendor's lifetime order metrics in the same transaction.
	UpdateStatus(ctx context.Context, vendorID, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error)

	// GetOrder returns the order if the account is its vendor or customer.
	GetOrder(ctx context.Context, accountID, orderID uuid.UUID) (*entity.Order, error)

	// ListVendorOrders returns the vendor's orders, newest first.
	ListVendorOrders(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// ListCustomerOrders returns the customer's orders, newest first.
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error)
}
