package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state set at order creation.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusAccepted means the vendor has taken the order.
	OrderStatusAccepted OrderStatus = "accepted"
	// OrderStatusRejected is terminal; the vendor declined the order.
	OrderStatusRejected OrderStatus = "rejected"
	// OrderStatusCompleted is terminal; completion updates vendor metrics.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled is terminal; reached from customer-side cancellation.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusRejected, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the one-directional state machine allows
// moving from s to next:
//
//	pending  -> accepted | rejected | cancelled
//	accepted -> completed
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusAccepted || next == OrderStatusRejected || next == OrderStatusCancelled
	case OrderStatusAccepted:
		return next == OrderStatusCompleted
	default:
		return false
	}
}

// Order belongs to exactly one vendor and one customer. Line items are an
// opaque JSON document; this service never interprets them.
type Order struct {
	ID              uuid.UUID
	VendorID        uuid.UUID
	CustomerID      uuid.UUID
	Status          OrderStatus
	TotalAmount     float64 // Non-negative currency amount.
	Items           json.RawMessage
	DeliveryAddress string
	DeliveryLat     *float64
	DeliveryLng     *float64
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
