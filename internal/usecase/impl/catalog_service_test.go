package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	service := NewCatalogService(mockProductRepo, mockOfferRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = productID
		}).
		Return(nil)

	product, err := service.CreateProduct(ctx, vendorID, &usecase.ProductInput{
		Name:          "Stinky Tofu",
		Price:         60,
		StockQuantity: 30,
		IsAvailable:   true,
		Category:      "Snacks",
	})
	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
	assert.Equal(t, vendorID, product.VendorID)
	assert.Equal(t, "Stinky Tofu", product.Name)
}

func TestCatalogService_CreateProduct_RejectsInvalidInput(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	service := NewCatalogService(mockProductRepo, mockOfferRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()

	cases := []struct {
		name  string
		input *usecase.ProductInput
	}{
		{"empty name", &usecase.ProductInput{Name: "  ", Price: 10}},
		{"negative price", &usecase.ProductInput{Name: "Tofu", Price: -1}},
		{"negative stock", &usecase.ProductInput{Name: "Tofu", Price: 10, StockQuantity: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product, err := service.CreateProduct(ctx, vendorID, tc.input)
			require.Error(t, err)
			assert.Nil(t, product)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCatalogService_UpdateProduct_ForeignVendorIsForbidden(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	service := NewCatalogService(mockProductRepo, mockOfferRepo, testLogger())

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, VendorID: uuid.New(), Name: "Tofu"}, nil)

	product, err := service.UpdateProduct(ctx, uuid.New(), productID, &usecase.ProductInput{
		Name:  "Tofu",
		Price: 65,
	})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCatalogService_UpdateProduct_Success(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	service := NewCatalogService(mockProductRepo, mockOfferRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, VendorID: vendorID, Name: "Tofu", Price: 60}, nil)
	mockProductRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := service.UpdateProduct(ctx, vendorID, productID, &usecase.ProductInput{
		Name:          "Spicy Tofu",
		Price:         70,
		StockQuantity: 12,
		IsAvailable:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Spicy Tofu", product.Name)
	assert.Equal(t, float64(70), product.Price)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	service := NewCatalogService(mockProductRepo, mockOfferRepo, testLogger())

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	err := service.DeleteProduct(ctx, uuid.New(), productID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_DeleteProduct_Success(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	service := NewCatalogService(mockProductRepo, mockOfferRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, VendorID: vendorID}, nil)
	mockProductRepo.EXPECT().Delete(ctx, productID).Return(nil)

	require.NoError(t, service.DeleteProduct(ctx, vendorID, productID))
}

func TestCatalogService_CreateOffer_RejectsOutOfRangeDiscount(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	service := NewCatalogService(mockProductRepo, mockOfferRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()

	for _, discount := range []float64{-5, 101} {
		offer, err := service.CreateOffer(ctx, vendorID, &usecase.OfferInput{
			Title:              "Weekend Special",
			DiscountPercentage: discount,
		})
		require.Error(t, err)
		assert.Nil(t, offer)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestCatalogService_CreateOffer_Success(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	service := NewCatalogService(mockProductRepo, mockOfferRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()
	offerID := uuid.New()

	mockOfferRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Offer")).
		Run(func(_ context.Context, offer *entity.Offer) {
			offer.ID = offerID
		}).
		Return(nil)

	offer, err := service.CreateOffer(ctx, vendorID, &usecase.OfferInput{
		Title:              "Weekend Special",
		DiscountPercentage: 20,
		IsActive:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, offerID, offer.ID)
	assert.Equal(t, vendorID, offer.VendorID)
}

func TestCatalogService_UpdateOffer_ForeignVendorIsForbidden(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	service := NewCatalogService(mockProductRepo, mockOfferRepo, testLogger())

	ctx := context.Background()
	offerID := uuid.New()

	mockOfferRepo.EXPECT().
		FindByID(ctx, offerID).
		Return(&entity.Offer{ID: offerID, VendorID: uuid.New(), Title: "Weekend Special"}, nil)

	offer, err := service.UpdateOffer(ctx, uuid.New(), offerID, &usecase.OfferInput{
		Title:              "Weekend Special",
		DiscountPercentage: 10,
	})
	require.Error(t, err)
	assert.Nil(t, offer)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCatalogService_DeleteOffer_Success(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	service := NewCatalogService(mockProductRepo, mockOfferRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()
	offerID := uuid.New()

	mockOfferRepo.EXPECT().
		FindByID(ctx, offerID).
		Return(&entity.Offer{ID: offerID, VendorID: vendorID}, nil)
	mockOfferRepo.EXPECT().Delete(ctx, offerID).Return(nil)

	require.NoError(t, service.DeleteOffer(ctx, vendorID, offerID))
}

func TestCatalogService_ListProducts_PassesAvailabilityFilter(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	service := NewCatalogService(mockProductRepo, mockOfferRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()
	products := []*entity.Product{{ID: uuid.New(), VendorID: vendorID, Name: "Tofu"}}

	mockProductRepo.EXPECT().ListByVendor(ctx, vendorID, true).Return(products, nil)

	got, err := service.ListProducts(ctx, vendorID, true)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_ListOffers_PassesActiveFilter(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)
	service := NewCatalogService(mockProductRepo, mockOfferRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()
	offers := []*entity.Offer{{ID: uuid.New(), VendorID: vendorID, Title: "Weekend Special"}}

	mockOfferRepo.EXPECT().ListByVendor(ctx, vendorID, false).Return(offers, nil)

	got, err := service.ListOffers(ctx, vendorID, false)
	require.NoError(t, err)
	assert.Equal(t, offers, got)
}
