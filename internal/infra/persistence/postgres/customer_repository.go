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

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create persists a new customer profile.
func (repo *customerRepository) Create(ctx context.Context, profile *entity.CustomerProfile) error {
	profileM := fromCustomerDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid account reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByAccountID retrieves the customer profile for an account.
func (repo *customerRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.CustomerProfile, error) {
	var profileM model.CustomerProfileModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer profile")
	}

	return toCustomerDomain(&profileM), nil
}

// Update overwrites the mutable customer profile fields.
func (repo *customerRepository) Update(ctx context.Context, profile *entity.CustomerProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerProfileModel{}).
		Where("account_id = ?", profile.AccountID).
		Updates(map[string]any{
			"name":                profile.Name,
			"profile_image":       profile.ProfileImage,
			"saved_address":       profile.SavedAddress,
			"location_lat":        profile.LocationLat,
			"location_lng":        profile.LocationLng,
			"language_preference": profile.LanguagePreference,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update customer profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerProfileModel to a domain CustomerProfile entity.
func toCustomerDomain(data *model.CustomerProfileModel) *entity.CustomerProfile {
	if data == nil {
		return nil
	}

	return &entity.CustomerProfile{
		AccountID:          data.AccountID,
		Name:               data.Name,
		ProfileImage:       data.ProfileImage,
		SavedAddress:       data.SavedAddress,
		LocationLat:        data.LocationLat,
		LocationLng:        data.LocationLng,
		LanguagePreference: data.LanguagePreference,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain CustomerProfile entity to a GORM CustomerProfileModel.
func fromCustomerDomain(data *entity.CustomerProfile) *model.CustomerProfileModel {
	if data == nil {
		return nil
	}

	return &model.CustomerProfileModel{
		AccountID:          data.AccountID,
		Name:               data.Name,
		ProfileImage:       data.ProfileImage,
		SavedAddress:       data.SavedAddress,
		LocationLat:        data.LocationLat,
		LocationLng:        data.LocationLng,
		LanguagePreference: data.LanguagePreference,
	}
}
