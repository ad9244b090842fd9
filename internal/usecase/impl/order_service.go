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

const (
	defaultOrderPageSize = 20
	maxOrderPageSize     = 100
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// PlaceOrder creates a pending order for the customer.
func (srv *orderService) PlaceOrder(ctx context.Context, customerID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if input.TotalAmount < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("total amount must be non-negative")
	}
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order items must not be empty")
	}

	order := &entity.Order{
		VendorID:        input.VendorID,
		CustomerID:      customerID,
		Status:          entity.OrderStatusPending,
		TotalAmount:     input.TotalAmount,
		Items:           input.Items,
		DeliveryAddress: input.DeliveryAddress,
		DeliveryLat:     input.DeliveryLat,
		DeliveryLng:     input.DeliveryLng,
		Notes:           input.Notes,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.logger.Error("Failed to place order", "error", err, "customerID", customerID)

		return nil, errors.Wrap(err, "failed to place order")
	}
	srv.logger.Info("Order placed", "orderID", order.ID, "vendorID", order.VendorID, "customerID", customerID)

	return order, nil
}

// CancelOrder moves a pending order to cancelled on behalf of its customer.
func (srv *orderService) CancelOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error) {
	var cancelled *entity.Order

	err := srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		orderRepo := txRepos.OrderRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		if order.CustomerID != customerID {
			return domainerrors.ErrForbidden.WrapMessage("order belongs to another customer")
		}

		if !order.Status.CanTransitionTo(entity.OrderStatusCancelled) {
			return domainerrors.ErrInvalidOrderStatus.WithDetails(
				"cannot cancel an order in status " + order.Status.String())
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusCancelled); err != nil {
			return errors.WithStack(err)
		}

		order.Status = entity.OrderStatusCancelled
		cancelled = order

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.logger.Info("Order cancelled", "orderID", orderID, "customerID", customerID)

	return cancelled, nil
}

// UpdateStatus applies a vendor-initiated transition. Completing an order
// increments the vendor's lifetime metrics inside the same transaction as
// the status write, so the counters can never drift from the order rows.
func (srv *orderService) UpdateStatus(ctx context.Context, vendorID, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error) {
	switch next {
	case entity.OrderStatusAccepted, entity.OrderStatusRejected, entity.OrderStatusCompleted:
	default:
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(
			"vendors may only accept, reject or complete orders")
	}

	var updated *entity.Order

	err := srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		orderRepo := txRepos.OrderRepo()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		if order.VendorID != vendorID {
			return domainerrors.ErrForbidden.WrapMessage("order belongs to another vendor")
		}

		if !order.Status.CanTransitionTo(next) {
			return domainerrors.ErrInvalidOrderStatus.WithDetails(
				"cannot move order from " + order.Status.String() + " to " + next.String())
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
			return errors.WithStack(err)
		}

		if next == entity.OrderStatusCompleted {
			if err := txRepos.VendorRepo().IncrementOrderMetrics(ctx, vendorID, order.TotalAmount); err != nil {
				return errors.WithStack(err)
			}
		}

		order.Status = next
		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.logger.Info("Order status updated", "orderID", orderID, "vendorID", vendorID, "status", next)

	return updated, nil
}

// GetOrder returns the order if the account is its vendor or customer.
func (srv *orderService) GetOrder(ctx context.Context, accountID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.VendorID != accountID && order.CustomerID != accountID {
		return nil, domainerrors.ErrForbidden.WrapMessage("order belongs to another account")
	}

	return order, nil
}

// ListVendorOrders returns the vendor's orders, newest first.
func (srv *orderService) ListVendorOrders(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	limit, offset = normalizePage(limit, offset)

	orders, err := srv.orderRepo.ListByVendor(ctx, vendorID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor orders")
	}

	return orders, nil
}

// ListCustomerOrders returns the customer's orders, newest first.
func (srv *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	limit, offset = normalizePage(limit, offset)

	orders, err := srv.orderRepo.ListByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultOrderPageSize
	}
	if limit > maxOrderPageSize {
		limit = maxOrderPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
