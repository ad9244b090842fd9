// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type signUpRequest struct {
	Mobile   string `json:"mobile" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=vendor customer"`

	// Optional profile fields; role-specific defaults apply when blank.
	ShopName        string   `json:"shop_name"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	BusinessType    string   `json:"business_type"`
	Name            string   `json:"name"`
	LocationLat     *float64 `json:"location_lat"`
	LocationLng     *float64 `json:"location_lng"`
	LocationAddress string   `json:"location_address"`
}

type signInRequest struct {
	Mobile   string `json:"mobile" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// accountView is the outward shape of an account. The password hash never
// leaves the server.
type accountView struct {
	ID        string    `json:"id"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	Profile   any       `json:"profile,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type authView struct {
	Account accountView `json:"account"`
	Token   string      `json:"token"`
}

func newAccountView(account *entity.Account) accountView {
	return accountView{
		ID:        account.ID.String(),
		Mobile:    account.Mobile,
		Email:     account.Email,
		Role:      account.Role.String(),
		Profile:   account.Profile(),
		CreatedAt: account.CreatedAt,
	}
}

// SignUp handles the account registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign up input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Mobile:          req.Mobile,
		Email:           req.Email,
		Password:        req.Password,
		Role:            entity.Role(req.Role),
		ShopName:        req.ShopName,
		Category:        req.Category,
		Description:     req.Description,
		BusinessType:    req.BusinessType,
		Name:            req.Name,
		LocationLat:     req.LocationLat,
		LocationLng:     req.LocationLng,
		LocationAddress: req.LocationAddress,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, authView{
		Account: newAccountView(output.Account),
		Token:   output.Token,
	}, "Account registered successfully")
}

// SignIn handles the sign in request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignIn(c.Request().Context(), &usecase.SignInInput{
		Mobile:   req.Mobile,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authView{
		Account: newAccountView(output.Account),
		Token:   output.Token,
	}, "Signed in successfully")
}

// Me returns the authenticated account with its role profile.
func (h *AuthHandler) Me(c echo.Context) error {
	account, err := h.uc.CurrentUser(c.Request().Context(), middleware.CurrentAccountID(c))
	if err != nil {
		return errors.WithStack(err)
	}
	if account == nil {
		return response.Unauthorized(c, "TOKEN_INVALID", "Account no longer available")
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
