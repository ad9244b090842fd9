package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bazaar/internal/domain/entity"
)

// ErrCustomerNotFound is returned when a customer profile cannot be found.
var ErrCustomerNotFound = errors.New("customer profile not found")

// CustomerRepository defines persistence operations for customer profiles.
type CustomerRepository interface {
	Create(ctx context.Context, profile *entity.CustomerProfile) error

	// FindByAccountID returns the customer profile for the account.
	// Returns ErrCustomerNotFound when no row matches.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.CustomerProfile, error)

	// Update overwrites the mutable profile fields.
	Update(ctx context.Context, profile *entity.CustomerProfile) error
}
