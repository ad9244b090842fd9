// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account. The
// profile fields are optional; role-specific defaults fill the blanks.
type SignUpInput struct {
	Mobile   string
	Email    string
	Password string
	Role     entity.Role

	// Vendor profile fields.
	ShopName     string
	Category     string
	Description  string
	BusinessType string

	// Customer profile fields.
	Name string

	// Shared location fields.
	LocationLat     *float64
	LocationLng     *float64
	LocationAddress string
}

// SignInInput defines the data required for an account to sign in.
type SignInInput struct {
	Mobile   string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the account with its role profile and a signed
// access token.
type AuthOutput struct {
	Account *entity.Account
	Token   string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SignUp creates the account and its role profile atomically and
	// issues an access token.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// SignIn verifies the credentials and issues an access token. A
	// missing account and a wrong password are indistinguishable to the
	// caller.
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)

	// CurrentUser loads the account with its profile. A missing or
	// inactive account yields (nil, nil), absence rather than an error.
	CurrentUser(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
}
