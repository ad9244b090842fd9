package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bazaar/internal/domain/entity"
)

// ErrVendorNotFound is returned when a vendor profile cannot be found.
var ErrVendorNotFound = errors.New("vendor profile not found")

// VendorRepository defines persistence operations for vendor profiles.
type VendorRepository interface {
	Create(ctx context.Context, profile *entity.VendorProfile) error

	// FindByAccountID returns the vendor profile for the account.
	// Returns ErrVendorNotFound when no row matches.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.VendorProfile, error)

	// Update overwrites the mutable profile fields.
	Update(ctx context.Context, profile *entity.VendorProfile) error

	// UpdateOnlineStatus flips the storefront visibility flag.
	UpdateOnlineStatus(ctx context.Context, accountID uuid.UUID, isOnline bool) error

	// IncrementOrderMetrics adds one completed order and its amount to
	// the vendor's lifetime counters in a single statement.
	IncrementOrderMetrics(ctx context.Context, accountID uuid.UUID, amount float64) error

	// ListOnline returns vendor profiles currently marked online,
	// optionally filtered by category, newest first.
	ListOnline(ctx context.Context, category string, limit, offset int) ([]*entity.VendorProfile, error)
}
