package impl

import (
	"context"
	"log/slog"
	"strings"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	offerRepo   repository.OfferRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	offerRepo repository.OfferRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		offerRepo:   offerRepo,
		logger:      logger,
	}
}

// CreateProduct adds a product to the vendor's catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, vendorID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		VendorID:      vendorID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		IsAvailable:   input.IsAvailable,
		Category:      input.Category,
		ImageURL:      input.ImageURL,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.logger.Error("Failed to create product", "error", err, "vendorID", vendorID)

		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.logger.Debug("Product created", "productID", product.ID, "vendorID", vendorID)

	return product, nil
}

// UpdateProduct overwrites a product owned by the vendor.
func (srv *catalogService) UpdateProduct(ctx context.Context, vendorID, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.findOwnedProduct(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.StockQuantity = input.StockQuantity
	product.IsAvailable = input.IsAvailable
	product.Category = input.Category
	product.ImageURL = input.ImageURL

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product owned by the vendor.
func (srv *catalogService) DeleteProduct(ctx context.Context, vendorID, productID uuid.UUID) error {
	if _, err := srv.findOwnedProduct(ctx, vendorID, productID); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	srv.logger.Debug("Product deleted", "productID", productID, "vendorID", vendorID)

	return nil
}

// ListProducts returns a vendor's products.
func (srv *catalogService) ListProducts(ctx context.Context, vendorID uuid.UUID, availableOnly bool) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByVendor(ctx, vendorID, availableOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateOffer publishes an offer for the vendor.
func (srv *catalogService) CreateOffer(ctx context.Context, vendorID uuid.UUID, input *usecase.OfferInput) (*entity.Offer, error) {
	if err := validateOfferInput(input); err != nil {
		return nil, err
	}

	offer := &entity.Offer{
		VendorID:           vendorID,
		Title:              input.Title,
		Description:        input.Description,
		DiscountPercentage: input.DiscountPercentage,
		ValidUntil:         input.ValidUntil,
		IsActive:           input.IsActive,
	}

	if err := srv.offerRepo.Create(ctx, offer); err != nil {
		srv.logger.Error("Failed to create offer", "error", err, "vendorID", vendorID)

		return nil, errors.Wrap(err, "failed to create offer")
	}
	srv.logger.Debug("Offer created", "offerID", offer.ID, "vendorID", vendorID)

	return offer, nil
}

// UpdateOffer overwrites an offer owned by the vendor.
func (srv *catalogService) UpdateOffer(ctx context.Context, vendorID, offerID uuid.UUID, input *usecase.OfferInput) (*entity.Offer, error) {
	if err := validateOfferInput(input); err != nil {
		return nil, err
	}

	offer, err := srv.findOwnedOffer(ctx, vendorID, offerID)
	if err != nil {
		return nil, err
	}

	offer.Title = input.Title
	offer.Description = input.Description
	offer.DiscountPercentage = input.DiscountPercentage
	offer.ValidUntil = input.ValidUntil
	offer.IsActive = input.IsActive

	if err := srv.offerRepo.Update(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to update offer")
	}

	return offer, nil
}

// DeleteOffer removes an offer owned by the vendor.
func (srv *catalogService) DeleteOffer(ctx context.Context, vendorID, offerID uuid.UUID) error {
	if _, err := srv.findOwnedOffer(ctx, vendorID, offerID); err != nil {
		return err
	}

	if err := srv.offerRepo.Delete(ctx, offerID); err != nil {
		return errors.Wrap(err, "failed to delete offer")
	}
	srv.logger.Debug("Offer deleted", "offerID", offerID, "vendorID", vendorID)

	return nil
}

// ListOffers returns a vendor's offers.
func (srv *catalogService) ListOffers(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]*entity.Offer, error) {
	offers, err := srv.offerRepo.ListByVendor(ctx, vendorID, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return offers, nil
}

func (srv *catalogService) findOwnedProduct(ctx context.Context, vendorID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.VendorID != vendorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("product belongs to another vendor")
	}

	return product, nil
}

func (srv *catalogService) findOwnedOffer(ctx context.Context, vendorID, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("offer not found")
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	if offer.VendorID != vendorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("offer belongs to another vendor")
	}

	return offer, nil
}

func validateProductInput(input *usecase.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("product name must not be empty")
	}
	if input.Price < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must be non-negative")
	}
	if input.StockQuantity < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("stock quantity must be non-negative")
	}

	return nil
}

func validateOfferInput(input *usecase.OfferInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("offer title must not be empty")
	}
	if input.DiscountPercentage < 0 || input.DiscountPercentage > 100 {
		return domainerrors.ErrValidationFailed.WrapMessage("discount percentage must be between 0 and 100")
	}

	return nil
}
