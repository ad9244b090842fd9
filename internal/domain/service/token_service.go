package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	AccountID uuid.UUID
	Mobile    string
	Role      entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the account.
	GenerateToken(account *entity.Account) (string, error)

	// ValidateToken checks the signature and expiry of a token string
	// and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured access token lifetime.
	GetTokenDuration() time.Duration
}
