package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type placeOrderRequest struct {
	VendorID        uuid.UUID       `json:"vendor_id" validate:"required"`
	TotalAmount     float64         `json:"total_amount" validate:"gte=0"`
	Items           json.RawMessage `json:"items" validate:"required"`
	DeliveryAddress string          `json:"delivery_address"`
	DeliveryLat     *float64        `json:"delivery_lat"`
	DeliveryLng     *float64        `json:"delivery_lng"`
	Notes           string          `json:"notes"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed"`
}

// PlaceOrder creates a pending order for the customer.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), middleware.CurrentAccountID(c), &usecase.PlaceOrderInput{
		VendorID:        req.VendorID,
		TotalAmount:     req.TotalAmount,
		Items:           req.Items,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryLat:     req.DeliveryLat,
		DeliveryLng:     req.DeliveryLng,
		Notes:           req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// CancelOrder cancels the customer's pending order.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), middleware.CurrentAccountID(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled successfully")
}

// UpdateStatus applies a vendor-initiated order transition.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), middleware.CurrentAccountID(c), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// GetOrder returns the order for either of its parties.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), middleware.CurrentAccountID(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListVendorOrders returns the vendor's orders, newest first.
func (h *OrderHandler) ListVendorOrders(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	orders, err := h.uc.ListVendorOrders(c.Request().Context(), middleware.CurrentAccountID(c), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ListCustomerOrders returns the customer's orders, newest first.
func (h *OrderHandler) ListCustomerOrders(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	orders, err := h.uc.ListCustomerOrders(c.Request().Context(), middleware.CurrentAccountID(c), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}
