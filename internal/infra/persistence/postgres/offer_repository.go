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

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// Create persists a new offer.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid vendor reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("discount percentage out of range")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required offer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt

	return nil
}

// FindByID retrieves an offer by its unique ID.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

// ListByVendor retrieves the vendor's offers, newest first.
func (repo *offerRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	query := repo.db.WithContext(ctx).Where("vendor_id = ?", vendorID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list offers by vendor")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, nil
}

// Update overwrites the mutable offer fields.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", offer.ID).
		Updates(map[string]any{
			"title":               offer.Title,
			"description":         offer.Description,
			"discount_percentage": offer.DiscountPercentage,
			"valid_until":         offer.ValidUntil,
			"is_active":           offer.IsActive,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("discount percentage out of range")
		}

		return errors.Wrap(result.Error, "failed to update offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// Delete removes an offer by its ID.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OfferModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:                 data.ID,
		VendorID:           data.VendorID,
		Title:              data.Title,
		Description:        data.Description,
		DiscountPercentage: data.DiscountPercentage,
		ValidUntil:         data.ValidUntil,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
	}
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	return &model.OfferModel{
		ID:                 data.ID,
		VendorID:           data.VendorID,
		Title:              data.Title,
		Description:        data.Description,
		DiscountPercentage: data.DiscountPercentage,
		ValidUntil:         data.ValidUntil,
		IsActive:           data.IsActive,
	}
}
