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

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// Create persists a new vendor profile.
func (repo *vendorRepository) Create(ctx context.Context, profile *entity.VendorProfile) error {
	profileM := fromVendorDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid account reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required vendor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByAccountID retrieves the vendor profile for an account.
func (repo *vendorRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.VendorProfile, error) {
	var profileM model.VendorProfileModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor profile")
	}

	return toVendorDomain(&profileM), nil
}

// Update overwrites the mutable vendor profile fields.
func (repo *vendorRepository) Update(ctx context.Context, profile *entity.VendorProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Where("account_id = ?", profile.AccountID).
		Updates(map[string]any{
			"shop_name":        profile.ShopName,
			"category":         profile.Category,
			"description":      profile.Description,
			"business_type":    profile.BusinessType,
			"contact_info":     profile.ContactInfo,
			"profile_image":    profile.ProfileImage,
			"location_lat":     profile.LocationLat,
			"location_lng":     profile.LocationLng,
			"location_address": profile.LocationAddress,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vendor profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// UpdateOnlineStatus flips the storefront visibility flag.
func (repo *vendorRepository) UpdateOnlineStatus(ctx context.Context, accountID uuid.UUID, isOnline bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Where("account_id = ?", accountID).
		Update("is_online", isOnline)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update online status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// IncrementOrderMetrics adds one completed order and its amount to the
// vendor's lifetime counters in a single statement.
func (repo *vendorRepository) IncrementOrderMetrics(ctx context.Context, accountID uuid.UUID, amount float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Where("account_id = ?", accountID).
		Updates(map[string]any{
			"total_orders": gorm.Expr("total_orders + 1"),
			"total_sales":  gorm.Expr("total_sales + ?", amount),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment order metrics")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// ListOnline returns vendor profiles currently marked online, optionally
// filtered by category, newest first.
func (repo *vendorRepository) ListOnline(ctx context.Context, category string, limit, offset int) ([]*entity.VendorProfile, error) {
	var profileModels []*model.VendorProfileModel

	query := repo.db.WithContext(ctx).Where("is_online = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list online vendors")
	}

	profiles := make([]*entity.VendorProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toVendorDomain(profileM))
	}

	return profiles, nil
}

// --- Mapper Functions ---

// toVendorDomain converts a GORM VendorProfileModel to a domain VendorProfile entity.
func toVendorDomain(data *model.VendorProfileModel) *entity.VendorProfile {
	if data == nil {
		return nil
	}

	return &entity.VendorProfile{
		AccountID:       data.AccountID,
		ShopName:        data.ShopName,
		Category:        data.Category,
		Description:     data.Description,
		BusinessType:    data.BusinessType,
		ContactInfo:     data.ContactInfo,
		ProfileImage:    data.ProfileImage,
		LocationLat:     data.LocationLat,
		LocationLng:     data.LocationLng,
		LocationAddress: data.LocationAddress,
		IsOnline:        data.IsOnline,
		Rating:          data.Rating,
		TotalOrders:     data.TotalOrders,
		TotalSales:      data.TotalSales,
		ActiveCustomers: data.ActiveCustomers,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromVendorDomain converts a domain VendorProfile entity to a GORM VendorProfileModel.
func fromVendorDomain(data *entity.VendorProfile) *model.VendorProfileModel {
	if data == nil {
		return nil
	}

	return &model.VendorProfileModel{
		AccountID:       data.AccountID,
		ShopName:        data.ShopName,
		Category:        data.Category,
		Description:     data.Description,
		BusinessType:    data.BusinessType,
		ContactInfo:     data.ContactInfo,
		ProfileImage:    data.ProfileImage,
		LocationLat:     data.LocationLat,
		LocationLng:     data.LocationLng,
		LocationAddress: data.LocationAddress,
		IsOnline:        data.IsOnline,
		Rating:          data.Rating,
		TotalOrders:     data.TotalOrders,
		TotalSales:      data.TotalSales,
		ActiveCustomers: data.ActiveCustomers,
	}
}
