package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	vendorRepo   repository.VendorRepository
	logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	vendorRepo repository.VendorRepository,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		vendorRepo:   vendorRepo,
		logger:       logger,
	}
}

// AddFavorite marks the vendor as a favorite. Adding an existing favorite
// is a no-op.
func (srv *favoriteService) AddFavorite(ctx context.Context, customerID, vendorID uuid.UUID) error {
	if _, err := srv.vendorRepo.FindByAccountID(ctx, vendorID); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("vendor not found")
		}

		return errors.Wrap(err, "failed to find vendor profile")
	}

	exists, err := srv.favoriteRepo.Exists(ctx, customerID, vendorID)
	if err != nil {
		return errors.Wrap(err, "failed to check favorite existence")
	}
	if exists {
		return nil
	}

	favorite := &entity.FavoriteVendor{
		CustomerID: customerID,
		VendorID:   vendorID,
	}
	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		// A concurrent add may have won the race; the favorite exists either way.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.ErrorCode() == domainerrors.ErrConflict.ErrorCode() {
			return nil
		}

		return errors.Wrap(err, "failed to add favorite")
	}
	srv.logger.Debug("Favorite added", "customerID", customerID, "vendorID", vendorID)

	return nil
}

// RemoveFavorite unmarks the vendor. Removing a non-favorite is a no-op.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, customerID, vendorID uuid.UUID) error {
	if err := srv.favoriteRepo.Delete(ctx, customerID, vendorID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to remove favorite")
	}
	srv.logger.Debug("Favorite removed", "customerID", customerID, "vendorID", vendorID)

	return nil
}

// IsFavorite reports whether the vendor is currently favorited.
func (srv *favoriteService) IsFavorite(ctx context.Context, customerID, vendorID uuid.UUID) (bool, error) {
	exists, err := srv.favoriteRepo.Exists(ctx, customerID, vendorID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return exists, nil
}

// ListFavorites returns the customer's favorites with vendor profiles
// attached, newest first.
func (srv *favoriteService) ListFavorites(ctx context.Context, customerID uuid.UUID) ([]*entity.FavoriteVendor, error) {
	favorites, err := srv.favoriteRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}
