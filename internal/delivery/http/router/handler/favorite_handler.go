package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for customer favorite handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add marks the vendor as one of the customer's favorites.
func (h *FavoriteHandler) Add(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid vendor ID")
	}

	if err := h.uc.AddFavorite(c.Request().Context(), middleware.CurrentAccountID(c), vendorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Vendor added to favorites")
}

// Remove unmarks the vendor.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid vendor ID")
	}

	if err := h.uc.RemoveFavorite(c.Request().Context(), middleware.CurrentAccountID(c), vendorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Vendor removed from favorites")
}

// Check reports whether the vendor is currently favorited.
func (h *FavoriteHandler) Check(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("vendorID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid vendor ID")
	}

	isFavorite, err := h.uc.IsFavorite(c.Request().Context(), middleware.CurrentAccountID(c), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_favorite": isFavorite}, "Favorite status retrieved successfully")
}

// List returns the customer's favorites with vendor profiles attached.
func (h *FavoriteHandler) List(c echo.Context) error {
	favorites, err := h.uc.ListFavorites(c.Request().Context(), middleware.CurrentAccountID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}
