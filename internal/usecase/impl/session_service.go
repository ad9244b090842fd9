package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	accountRepo  repository.AccountRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	accountRepo repository.AccountRepository,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		accountRepo:  accountRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Resume validates the raw token and hydrates the account. Any failure
// along the way, a malformed or expired token, a missing account, or a
// missing profile, yields the empty session rather than an error.
func (srv *sessionService) Resume(ctx context.Context, rawToken string) (*usecase.Session, error) {
	if rawToken == "" {
		return nil, nil
	}

	claims, err := srv.tokenService.ValidateToken(rawToken)
	if err != nil {
		srv.logger.Debug("Session token rejected", "error", err)

		return nil, nil
	}

	account, err := srv.accountRepo.FindByIDWithProfile(ctx, claims.AccountID)
	if err != nil {
		if !errors.Is(err, repository.ErrAccountNotFound) {
			srv.logger.Warn("Failed to hydrate session account", "accountID", claims.AccountID, "error", err)
		}

		return nil, nil
	}

	if !account.IsActive || !account.HasProfile() {
		return nil, nil
	}

	return &usecase.Session{Account: account, Claims: claims}, nil
}
