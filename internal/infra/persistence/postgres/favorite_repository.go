package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Create adds the vendor to the customer's favorites.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.FavoriteVendor) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("vendor already favorited")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid customer or vendor reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes the (customer, vendor) pair.
func (repo *favoriteRepository) Delete(ctx context.Context, customerID, vendorID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("customer_id = ? AND vendor_id = ?", customerID, vendorID).
		Delete(&model.FavoriteVendorModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// Exists reports whether the vendor is favorited by the customer.
func (repo *favoriteRepository) Exists(ctx context.Context, customerID, vendorID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteVendorModel{}).
		Where("customer_id = ? AND vendor_id = ?", customerID, vendorID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check favorite existence")
	}

	return count > 0, nil
}

// ListByCustomer retrieves the customer's favorites with the vendor profile preloaded.
func (repo *favoriteRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.FavoriteVendor, error) {
	var favoriteModels []*model.FavoriteVendorModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Preload("Vendor").
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites by customer")
	}

	favorites := make([]*entity.FavoriteVendor, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteVendorModel to a domain FavoriteVendor entity.
func toFavoriteDomain(data *model.FavoriteVendorModel) *entity.FavoriteVendor {
	if data == nil {
		return nil
	}

	return &entity.FavoriteVendor{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		VendorID:   data.VendorID,
		Vendor:     toVendorDomain(data.Vendor),
		CreatedAt:  data.CreatedAt,
	}
}

// fromFavoriteDomain converts a domain FavoriteVendor entity to a GORM FavoriteVendorModel.
func fromFavoriteDomain(data *entity.FavoriteVendor) *model.FavoriteVendorModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteVendorModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		VendorID:   data.VendorID,
	}
}
