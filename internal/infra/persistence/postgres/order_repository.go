package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid vendor or customer reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order violates numeric constraints")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateStatus persists the new lifecycle status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// ListByVendor retrieves the vendor's orders, newest first.
func (repo *orderRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by vendor")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// ListByCustomer retrieves the customer's orders, newest first.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by customer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// CountByVendor returns the vendor's total order count across all statuses.
func (repo *orderRepository) CountByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("vendor_id = ?", vendorID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by vendor")
	}

	return count, nil
}

// CountByVendorAndStatus returns how many of the vendor's orders hold the given status.
func (repo *orderRepository) CountByVendorAndStatus(ctx context.Context, vendorID uuid.UUID, status entity.OrderStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("vendor_id = ? AND status = ?", vendorID, status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by vendor and status")
	}

	return count, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:              data.ID,
		VendorID:        data.VendorID,
		CustomerID:      data.CustomerID,
		Status:          entity.OrderStatus(data.Status),
		TotalAmount:     data.TotalAmount,
		Items:           []byte(data.Items),
		DeliveryAddress: data.DeliveryAddress,
		DeliveryLat:     data.DeliveryLat,
		DeliveryLng:     data.DeliveryLng,
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		VendorID:        data.VendorID,
		CustomerID:      data.CustomerID,
		Status:          data.Status.String(),
		TotalAmount:     data.TotalAmount,
		Items:           datatypes.JSON(data.Items),
		DeliveryAddress: data.DeliveryAddress,
		DeliveryLat:     data.DeliveryLat,
		DeliveryLng:     data.DeliveryLng,
		Notes:           data.Notes,
	}
}
