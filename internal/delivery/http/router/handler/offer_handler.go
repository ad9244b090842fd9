package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OfferHandler holds dependencies for vendor offer handlers.
type OfferHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler, injected by Fx.
func NewOfferHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{
		uc:     uc,
		logger: logger,
	}
}

type offerRequest struct {
	Title              string     `json:"title" validate:"required"`
	Description        string     `json:"description"`
	DiscountPercentage float64    `json:"discount_percentage" validate:"gte=0,lte=100"`
	ValidUntil         *time.Time `json:"valid_until"`
	IsActive           bool       `json:"is_active"`
}

func (r *offerRequest) toInput() *usecase.OfferInput {
	return &usecase.OfferInput{
		Title:              r.Title,
		Description:        r.Description,
		DiscountPercentage: r.DiscountPercentage,
		ValidUntil:         r.ValidUntil,
		IsActive:           r.IsActive,
	}
}

// Create adds an offer to the vendor's storefront.
func (h *OfferHandler) Create(c echo.Context) error {
	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	offer, err := h.uc.CreateOffer(c.Request().Context(), middleware.CurrentAccountID(c), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offer, "Offer created successfully")
}

// Update overwrites one of the vendor's offers.
func (h *OfferHandler) Update(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer ID")
	}

	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	offer, err := h.uc.UpdateOffer(c.Request().Context(), middleware.CurrentAccountID(c), offerID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer, "Offer updated successfully")
}

// Delete removes one of the vendor's offers.
func (h *OfferHandler) Delete(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer ID")
	}

	if err := h.uc.DeleteOffer(c.Request().Context(), middleware.CurrentAccountID(c), offerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Offer deleted successfully")
}

// List returns the vendor's offers, including inactive ones.
func (h *OfferHandler) List(c echo.Context) error {
	offers, err := h.uc.ListOffers(c.Request().Context(), middleware.CurrentAccountID(c), false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offers, "Offers retrieved successfully")
}
