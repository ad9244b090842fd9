package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bazaar/internal/domain/entity"
)

// ErrAccountNotFound is returned when an account cannot be found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// Create persists a new account row. The role profile is created
	// separately through VendorRepository or CustomerRepository.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID returns the account without any profile attached.
	// Returns ErrAccountNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByMobile returns the account matching the mobile number.
	// Returns ErrAccountNotFound when no row matches.
	FindByMobile(ctx context.Context, mobile string) (*entity.Account, error)

	// FindByIDWithProfile returns the account with its role profile
	// preloaded. Returns ErrAccountNotFound when no row matches.
	FindByIDWithProfile(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}
