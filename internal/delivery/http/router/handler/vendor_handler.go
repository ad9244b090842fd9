package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VendorHandler holds dependencies for vendor profile and discovery handlers.
type VendorHandler struct {
	uc     usecase.VendorUsecase
	logger *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(uc usecase.VendorUsecase, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{
		uc:     uc,
		logger: logger,
	}
}

type vendorProfileRequest struct {
	ShopName        string   `json:"shop_name" validate:"required"`
	Category        string   `json:"category" validate:"required"`
	Description     string   `json:"description"`
	BusinessType    string   `json:"business_type"`
	ContactInfo     string   `json:"contact_info"`
	ProfileImage    string   `json:"profile_image"`
	LocationLat     *float64 `json:"location_lat"`
	LocationLng     *float64 `json:"location_lng"`
	LocationAddress string   `json:"location_address"`
}

type setOnlineRequest struct {
	IsOnline *bool `json:"is_online" validate:"required"`
}

// GetDashboard returns the vendor's home screen aggregate.
func (h *VendorHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.uc.GetDashboard(c.Request().Context(), middleware.CurrentAccountID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "Dashboard retrieved successfully")
}

// UpdateProfile overwrites the vendor's mutable profile fields.
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	var req vendorProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), middleware.CurrentAccountID(c), &usecase.VendorProfileInput{
		ShopName:        req.ShopName,
		Category:        req.Category,
		Description:     req.Description,
		BusinessType:    req.BusinessType,
		ContactInfo:     req.ContactInfo,
		ProfileImage:    req.ProfileImage,
		LocationLat:     req.LocationLat,
		LocationLng:     req.LocationLng,
		LocationAddress: req.LocationAddress,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// SetOnline flips the storefront visibility flag.
func (h *VendorHandler) SetOnline(c echo.Context) error {
	var req setOnlineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid online status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetOnline(c.Request().Context(), middleware.CurrentAccountID(c), *req.IsOnline); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_online": *req.IsOnline}, "Online status updated successfully")
}

// ListDirectory returns online vendors for customer discovery.
func (h *VendorHandler) ListDirectory(c echo.Context) error {
	category := c.QueryParam("category")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	vendors, err := h.uc.ListDirectory(c.Request().Context(), category, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendors, "Vendors retrieved successfully")
}

// GetStorefront returns the customer-facing view of a single vendor.
func (h *VendorHandler) GetStorefront(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid vendor ID")
	}

	storefront, err := h.uc.GetStorefront(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, storefront, "Storefront retrieved successfully")
}

// GetStorefrontQR renders the vendor's shareable storefront QR code as PNG.
func (h *VendorHandler) GetStorefrontQR(c echo.Context) error {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid vendor ID")
	}

	png, err := h.uc.GenerateStorefrontQR(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
