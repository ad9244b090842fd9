package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vendorServiceMocks struct {
	vendorRepo  *mockRepo.MockVendorRepository
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	offerRepo   *mockRepo.MockOfferRepository
	chatRepo    *mockRepo.MockChatRepository
	qrService   *mockSvc.MockQRCodeService
}

func newVendorService(t *testing.T) (usecase.VendorUsecase, vendorServiceMocks) {
	t.Helper()

	mocks := vendorServiceMocks{
		vendorRepo:  mockRepo.NewMockVendorRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		offerRepo:   mockRepo.NewMockOfferRepository(t),
		chatRepo:    mockRepo.NewMockChatRepository(t),
		qrService:   mockSvc.NewMockQRCodeService(t),
	}
	service := NewVendorService(
		mocks.vendorRepo,
		mocks.orderRepo,
		mocks.productRepo,
		mocks.offerRepo,
		mocks.chatRepo,
		mocks.qrService,
		testLogger(),
	)

	return service, mocks
}

func TestVendorService_GetDashboard_Success(t *testing.T) {
	service, mocks := newVendorService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	profile := &entity.VendorProfile{AccountID: vendorID, ShopName: "Night Market Stall"}
	recentOrders := []*entity.Order{{ID: uuid.New(), VendorID: vendorID}}

	mocks.vendorRepo.EXPECT().FindByAccountID(ctx, vendorID).Return(profile, nil)
	mocks.orderRepo.EXPECT().ListByVendor(ctx, vendorID, dashboardRecentOrders, 0).Return(recentOrders, nil)
	mocks.orderRepo.EXPECT().CountByVendor(ctx, vendorID).Return(int64(8), nil)
	mocks.orderRepo.EXPECT().CountByVendorAndStatus(ctx, vendorID, entity.OrderStatusPending).Return(int64(3), nil)
	mocks.orderRepo.EXPECT().CountByVendorAndStatus(ctx, vendorID, entity.OrderStatusAccepted).Return(int64(1), nil)
	mocks.orderRepo.EXPECT().CountByVendorAndStatus(ctx, vendorID, entity.OrderStatusCompleted).Return(int64(2), nil)
	mocks.productRepo.EXPECT().
		ListByVendor(ctx, vendorID, false).
		Return([]*entity.Product{{ID: uuid.New()}, {ID: uuid.New()}}, nil)
	mocks.chatRepo.EXPECT().CountUnread(ctx, vendorID).Return(int64(7), nil)

	dashboard, err := service.GetDashboard(ctx, vendorID)
	require.NoError(t, err)
	assert.Equal(t, profile, dashboard.Profile)
	assert.Equal(t, recentOrders, dashboard.RecentOrders)
	assert.Equal(t, int64(8), dashboard.TotalOrders)
	assert.Equal(t, int64(3), dashboard.PendingOrders)
	assert.Equal(t, int64(1), dashboard.AcceptedOrders)
	assert.Equal(t, int64(2), dashboard.CompletedOrders)
	assert.Equal(t, 2, dashboard.ProductCount)
	assert.InDelta(t, 25.0, dashboard.SuccessRate, 0.001)
	assert.Equal(t, int64(7), dashboard.UnreadMessages)
}

func TestVendorService_GetDashboard_NoOrders(t *testing.T) {
	service, mocks := newVendorService(t)

	ctx := context.Background()
	vendorID := uuid.New()

	mocks.vendorRepo.EXPECT().
		FindByAccountID(ctx, vendorID).
		Return(&entity.VendorProfile{AccountID: vendorID}, nil)
	mocks.orderRepo.EXPECT().ListByVendor(ctx, vendorID, dashboardRecentOrders, 0).Return(nil, nil)
	mocks.orderRepo.EXPECT().CountByVendor(ctx, vendorID).Return(int64(0), nil)
	mocks.orderRepo.EXPECT().CountByVendorAndStatus(ctx, vendorID, entity.OrderStatusPending).Return(int64(0), nil)
	mocks.orderRepo.EXPECT().CountByVendorAndStatus(ctx, vendorID, entity.OrderStatusAccepted).Return(int64(0), nil)
	mocks.orderRepo.EXPECT().CountByVendorAndStatus(ctx, vendorID, entity.OrderStatusCompleted).Return(int64(0), nil)
	mocks.productRepo.EXPECT().ListByVendor(ctx, vendorID, false).Return(nil, nil)
	mocks.chatRepo.EXPECT().CountUnread(ctx, vendorID).Return(int64(0), nil)

	dashboard, err := service.GetDashboard(ctx, vendorID)
	require.NoError(t, err)
	assert.Zero(t, dashboard.SuccessRate)
	assert.Zero(t, dashboard.ProductCount)
}

func TestVendorService_GetDashboard_VendorNotFound(t *testing.T) {
	service, mocks := newVendorService(t)

	ctx := context.Background()
	vendorID := uuid.New()

	mocks.vendorRepo.EXPECT().
		FindByAccountID(ctx, vendorID).
		Return(nil, repository.ErrVendorNotFound)

	dashboard, err := service.GetDashboard(ctx, vendorID)
	require.Error(t, err)
	assert.Nil(t, dashboard)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestVendorService_UpdateProfile_Success(t *testing.T) {
	service, mocks := newVendorService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	profile := &entity.VendorProfile{AccountID: vendorID, ShopName: "Old Name"}

	mocks.vendorRepo.EXPECT().FindByAccountID(ctx, vendorID).Return(profile, nil)
	mocks.vendorRepo.EXPECT().Update(ctx, profile).Return(nil)

	updated, err := service.UpdateProfile(ctx, vendorID, &usecase.VendorProfileInput{
		ShopName: "Ah-Hua Beef Noodles",
		Category: "Noodles",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ah-Hua Beef Noodles", updated.ShopName)
	assert.Equal(t, "Noodles", updated.Category)
}

func TestVendorService_SetOnline(t *testing.T) {
	service, mocks := newVendorService(t)

	ctx := context.Background()
	vendorID := uuid.New()

	mocks.vendorRepo.EXPECT().UpdateOnlineStatus(ctx, vendorID, true).Return(nil)

	require.NoError(t, service.SetOnline(ctx, vendorID, true))
}

func TestVendorService_SetOnline_UnknownVendor(t *testing.T) {
	service, mocks := newVendorService(t)

	ctx := context.Background()
	vendorID := uuid.New()

	mocks.vendorRepo.EXPECT().
		UpdateOnlineStatus(ctx, vendorID, false).
		Return(repository.ErrVendorNotFound)

	err := service.SetOnline(ctx, vendorID, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestVendorService_ListDirectory_NormalizesPaging(t *testing.T) {
	service, mocks := newVendorService(t)

	ctx := context.Background()
	vendors := []*entity.VendorProfile{{AccountID: uuid.New(), ShopName: "Stall A"}}

	mocks.vendorRepo.EXPECT().
		ListOnline(ctx, "Noodles", defaultDirectoryPageSize, 0).
		Return(vendors, nil)

	got, err := service.ListDirectory(ctx, "Noodles", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, vendors, got)

	mocks.vendorRepo.EXPECT().
		ListOnline(ctx, "", maxDirectoryPageSize, 40).
		Return(vendors, nil)

	_, err = service.ListDirectory(ctx, "", 1000, 40)
	require.NoError(t, err)
}

func TestVendorService_GetStorefront_FiltersToPublicCatalog(t *testing.T) {
	service, mocks := newVendorService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	profile := &entity.VendorProfile{AccountID: vendorID, ShopName: "Night Market Stall"}
	products := []*entity.Product{{ID: uuid.New(), VendorID: vendorID, IsAvailable: true}}
	offers := []*entity.Offer{{ID: uuid.New(), VendorID: vendorID, IsActive: true}}

	mocks.vendorRepo.EXPECT().FindByAccountID(ctx, vendorID).Return(profile, nil)
	mocks.productRepo.EXPECT().ListByVendor(ctx, vendorID, true).Return(products, nil)
	mocks.offerRepo.EXPECT().ListByVendor(ctx, vendorID, true).Return(offers, nil)

	storefront, err := service.GetStorefront(ctx, vendorID)
	require.NoError(t, err)
	assert.Equal(t, profile, storefront.Profile)
	assert.Equal(t, products, storefront.Products)
	assert.Equal(t, offers, storefront.Offers)
}

func TestVendorService_GenerateStorefrontQR_Success(t *testing.T) {
	service, mocks := newVendorService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	qrBytes := []byte{0x89, 0x50, 0x4e, 0x47}

	mocks.vendorRepo.EXPECT().
		FindByAccountID(ctx, vendorID).
		Return(&entity.VendorProfile{AccountID: vendorID}, nil)
	mocks.qrService.EXPECT().GenerateStorefrontQR(vendorID).Return(qrBytes, nil)

	got, err := service.GenerateStorefrontQR(ctx, vendorID)
	require.NoError(t, err)
	assert.Equal(t, qrBytes, got)
}

func TestVendorService_GenerateStorefrontQR_UnknownVendor(t *testing.T) {
	service, mocks := newVendorService(t)

	ctx := context.Background()
	vendorID := uuid.New()

	mocks.vendorRepo.EXPECT().
		FindByAccountID(ctx, vendorID).
		Return(nil, repository.ErrVendorNotFound)

	got, err := service.GenerateStorefrontQR(ctx, vendorID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
