package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
)

// Session carries the authenticated account for one request.
type Session struct {
	Account *entity.Account
	Claims  *service.Claims
}

// SessionUsecase restores a session from a raw bearer token.
type SessionUsecase interface {
	// Resume validates the token and hydrates the account. A malformed
	// or expired token, or a failed account lookup, yields (nil, nil):
	// the empty session, not an error.
	Resume(ctx context.Context, rawToken string) (*Session, error)
}
