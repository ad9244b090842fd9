package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_AddFavorite_Success(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockVendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewFavoriteService(mockFavoriteRepo, mockVendorRepo, testLogger())

	ctx := context.Background()
	customerID := uuid.New()
	vendorID := uuid.New()

	mockVendorRepo.EXPECT().
		FindByAccountID(ctx, vendorID).
		Return(&entity.VendorProfile{AccountID: vendorID}, nil)
	mockFavoriteRepo.EXPECT().Exists(ctx, customerID, vendorID).Return(false, nil)
	mockFavoriteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FavoriteVendor")).
		Return(nil)

	require.NoError(t, service.AddFavorite(ctx, customerID, vendorID))
}

func TestFavoriteService_AddFavorite_AlreadyFavoritedIsNoOp(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockVendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewFavoriteService(mockFavoriteRepo, mockVendorRepo, testLogger())

	ctx := context.Background()
	customerID := uuid.New()
	vendorID := uuid.New()

	mockVendorRepo.EXPECT().
		FindByAccountID(ctx, vendorID).
		Return(&entity.VendorProfile{AccountID: vendorID}, nil)
	mockFavoriteRepo.EXPECT().Exists(ctx, customerID, vendorID).Return(true, nil)

	require.NoError(t, service.AddFavorite(ctx, customerID, vendorID))
}

func TestFavoriteService_AddFavorite_ConcurrentDuplicateIsNoOp(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockVendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewFavoriteService(mockFavoriteRepo, mockVendorRepo, testLogger())

	ctx := context.Background()
	customerID := uuid.New()
	vendorID := uuid.New()

	mockVendorRepo.EXPECT().
		FindByAccountID(ctx, vendorID).
		Return(&entity.VendorProfile{AccountID: vendorID}, nil)
	mockFavoriteRepo.EXPECT().Exists(ctx, customerID, vendorID).Return(false, nil)
	mockFavoriteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FavoriteVendor")).
		Return(domainerrors.ErrConflict.WrapMessage("vendor already favorited"))

	require.NoError(t, service.AddFavorite(ctx, customerID, vendorID))
}

func TestFavoriteService_AddFavorite_UnknownVendor(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockVendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewFavoriteService(mockFavoriteRepo, mockVendorRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()

	mockVendorRepo.EXPECT().
		FindByAccountID(ctx, vendorID).
		Return(nil, repository.ErrVendorNotFound)

	err := service.AddFavorite(ctx, uuid.New(), vendorID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestFavoriteService_RemoveFavorite_Success(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockVendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewFavoriteService(mockFavoriteRepo, mockVendorRepo, testLogger())

	ctx := context.Background()
	customerID := uuid.New()
	vendorID := uuid.New()

	mockFavoriteRepo.EXPECT().Delete(ctx, customerID, vendorID).Return(nil)

	require.NoError(t, service.RemoveFavorite(ctx, customerID, vendorID))
}

func TestFavoriteService_RemoveFavorite_MissingEntryIsNoOp(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockVendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewFavoriteService(mockFavoriteRepo, mockVendorRepo, testLogger())

	ctx := context.Background()
	customerID := uuid.New()
	vendorID := uuid.New()

	mockFavoriteRepo.EXPECT().
		Delete(ctx, customerID, vendorID).
		Return(repository.ErrFavoriteNotFound)

	require.NoError(t, service.RemoveFavorite(ctx, customerID, vendorID))
}

func TestFavoriteService_IsFavorite(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockVendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewFavoriteService(mockFavoriteRepo, mockVendorRepo, testLogger())

	ctx := context.Background()
	customerID := uuid.New()
	vendorID := uuid.New()

	mockFavoriteRepo.EXPECT().Exists(ctx, customerID, vendorID).Return(true, nil)

	got, err := service.IsFavorite(ctx, customerID, vendorID)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockVendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewFavoriteService(mockFavoriteRepo, mockVendorRepo, testLogger())

	ctx := context.Background()
	customerID := uuid.New()
	favorites := []*entity.FavoriteVendor{
		{ID: uuid.New(), CustomerID: customerID, VendorID: uuid.New()},
	}

	mockFavoriteRepo.EXPECT().ListByCustomer(ctx, customerID).Return(favorites, nil)

	got, err := service.ListFavorites(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, favorites, got)
}
