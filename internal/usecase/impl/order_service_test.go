package impl

import (
	"context"
	"encoding/json"
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

func orderItems(t *testing.T) json.RawMessage {
	t.Helper()

	return json.RawMessage(`[{"name":"beef noodles","qty":2,"price":75}]`)
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	ctx := context.Background()
	customerID := uuid.New()
	vendorID := uuid.New()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = orderID
		}).
		Return(nil)

	order, err := service.PlaceOrder(ctx, customerID, &usecase.PlaceOrderInput{
		VendorID:        vendorID,
		TotalAmount:     150,
		Items:           orderItems(t),
		DeliveryAddress: "No. 1, Night Market Rd",
	})
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, vendorID, order.VendorID)
	assert.Equal(t, customerID, order.CustomerID)
}

func TestOrderService_PlaceOrder_RejectsNegativeAmount(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	order, err := service.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		VendorID:    uuid.New(),
		TotalAmount: -1,
		Items:       orderItems(t),
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_PlaceOrder_RejectsEmptyItems(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	order, err := service.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		VendorID:    uuid.New(),
		TotalAmount: 150,
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_UpdateStatus_CompletionUpdatesVendorMetrics(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txVendorRepo := mockRepo.NewMockVendorRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().VendorRepo().Return(txVendorRepo)

	txOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:          orderID,
			VendorID:    vendorID,
			CustomerID:  uuid.New(),
			Status:      entity.OrderStatusAccepted,
			TotalAmount: 150,
		}, nil)

	txOrderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusCompleted).
		Return(nil)

	// The metric write rides in the same transaction as the status change.
	txVendorRepo.EXPECT().
		IncrementOrderMetrics(ctx, vendorID, float64(150)).
		Return(nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := service.UpdateStatus(ctx, vendorID, orderID, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
}

func TestOrderService_UpdateStatus_AcceptDoesNotTouchMetrics(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)

	txOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:       orderID,
			VendorID: vendorID,
			Status:   entity.OrderStatusPending,
		}, nil)

	txOrderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusAccepted).
		Return(nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := service.UpdateStatus(ctx, vendorID, orderID, entity.OrderStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAccepted, order.Status)
}

func TestOrderService_UpdateStatus_VendorCannotCancel(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	order, err := service.UpdateStatus(context.Background(), uuid.New(), uuid.New(), entity.OrderStatusCancelled)
	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrInvalidOrderStatus.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)

	// Completed is terminal; no further transitions are permitted.
	txOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:       orderID,
			VendorID: vendorID,
			Status:   entity.OrderStatusCompleted,
		}, nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := service.UpdateStatus(ctx, vendorID, orderID, entity.OrderStatusAccepted)
	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrInvalidOrderStatus.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_UpdateStatus_ForeignVendorIsForbidden(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	ctx := context.Background()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)

	txOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:       orderID,
			VendorID: uuid.New(),
			Status:   entity.OrderStatusPending,
		}, nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := service.UpdateStatus(ctx, uuid.New(), orderID, entity.OrderStatusAccepted)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_CancelOrder_Success(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)

	txOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:         orderID,
			VendorID:   uuid.New(),
			CustomerID: customerID,
			Status:     entity.OrderStatusPending,
		}, nil)

	txOrderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusCancelled).
		Return(nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := service.CancelOrder(ctx, customerID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_CancelOrder_AcceptedOrderCannotBeCancelled(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)

	txOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:         orderID,
			CustomerID: customerID,
			Status:     entity.OrderStatusAccepted,
		}, nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := service.CancelOrder(ctx, customerID, orderID)
	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrInvalidOrderStatus.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_CancelOrder_ForeignCustomerIsForbidden(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	ctx := context.Background()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)

	txOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:         orderID,
			CustomerID: uuid.New(),
			Status:     entity.OrderStatusPending,
		}, nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	order, err := service.CancelOrder(ctx, uuid.New(), orderID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_GetOrder_EitherPartyCanRead(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()
	customerID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{
		ID:         orderID,
		VendorID:   vendorID,
		CustomerID: customerID,
		Status:     entity.OrderStatusPending,
	}

	mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil).Twice()

	gotByVendor, err := service.GetOrder(ctx, vendorID, orderID)
	require.NoError(t, err)
	assert.Equal(t, order, gotByVendor)

	gotByCustomer, err := service.GetOrder(ctx, customerID, orderID)
	require.NoError(t, err)
	assert.Equal(t, order, gotByCustomer)
}

func TestOrderService_GetOrder_StrangerIsForbidden(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:         orderID,
			VendorID:   uuid.New(),
			CustomerID: uuid.New(),
		}, nil)

	order, err := service.GetOrder(ctx, uuid.New(), orderID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := service.GetOrder(ctx, uuid.New(), orderID)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListVendorOrders_NormalizesPaging(t *testing.T) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(mockTxManager, mockOrderRepo, testLogger())

	ctx := context.Background()
	vendorID := uuid.New()

	mockOrderRepo.EXPECT().
		ListByVendor(ctx, vendorID, defaultOrderPageSize, 0).
		Return([]*entity.Order{}, nil)

	_, err := service.ListVendorOrders(ctx, vendorID, 0, -5)
	require.NoError(t, err)

	mockOrderRepo.EXPECT().
		ListByVendor(ctx, vendorID, maxOrderPageSize, 10).
		Return([]*entity.Order{}, nil)

	_, err = service.ListVendorOrders(ctx, vendorID, 500, 10)
	require.NoError(t, err)
}
