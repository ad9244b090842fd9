// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	VendorHandler   *handler.VendorHandler
	ProductHandler  *handler.ProductHandler
	OfferHandler    *handler.OfferHandler
	OrderHandler    *handler.OrderHandler
	FavoriteHandler *handler.FavoriteHandler
	ChatHandler     *handler.ChatHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", p.AuthHandler.SignUp)
		authGroup.POST("/signin", p.AuthHandler.SignIn)
		authGroup.GET("/me", p.AuthHandler.Me, p.AuthMiddleware.Authenticate)
	}

	// Customer-facing vendor discovery, no authentication required
	vendorsGroup := e.Group("/vendors")
	{
		vendorsGroup.GET("", p.VendorHandler.ListDirectory)
		vendorsGroup.GET("/:id/storefront", p.VendorHandler.GetStorefront)
		vendorsGroup.GET("/:id/qrcode", p.VendorHandler.GetStorefrontQR)
	}

	// Vendor routes that require authentication and the "vendor" role
	vendorGroup := e.Group("/vendor")
	vendorGroup.Use(p.AuthMiddleware.Authenticate)
	vendorGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorGroup.GET("/dashboard", p.VendorHandler.GetDashboard)
		vendorGroup.PUT("/profile", p.VendorHandler.UpdateProfile)
		vendorGroup.PUT("/online", p.VendorHandler.SetOnline)

		vendorGroup.POST("/products", p.ProductHandler.Create)
		vendorGroup.GET("/products", p.ProductHandler.List)
		vendorGroup.PUT("/products/:id", p.ProductHandler.Update)
		vendorGroup.DELETE("/products/:id", p.ProductHandler.Delete)

		vendorGroup.POST("/offers", p.OfferHandler.Create)
		vendorGroup.GET("/offers", p.OfferHandler.List)
		vendorGroup.PUT("/offers/:id", p.OfferHandler.Update)
		vendorGroup.DELETE("/offers/:id", p.OfferHandler.Delete)

		vendorGroup.GET("/orders", p.OrderHandler.ListVendorOrders)
		vendorGroup.PUT("/orders/:id/status", p.OrderHandler.UpdateStatus)
	}

	// Customer routes that require authentication and the "customer" role
	customerGroup := e.Group("/customer")
	customerGroup.Use(p.AuthMiddleware.Authenticate)
	customerGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleCustomer))
	{
		customerGroup.POST("/orders", p.OrderHandler.PlaceOrder)
		customerGroup.GET("/orders", p.OrderHandler.ListCustomerOrders)
		customerGroup.PUT("/orders/:id/cancel", p.OrderHandler.CancelOrder)

		customerGroup.GET("/favorites", p.FavoriteHandler.List)
		customerGroup.POST("/favorites/:vendorID", p.FavoriteHandler.Add)
		customerGroup.DELETE("/favorites/:vendorID", p.FavoriteHandler.Remove)
		customerGroup.GET("/favorites/:vendorID", p.FavoriteHandler.Check)
	}

	// Routes shared by both roles
	authedGroup := e.Group("", p.AuthMiddleware.Authenticate)
	{
		authedGroup.GET("/orders/:id", p.OrderHandler.GetOrder)

		authedGroup.POST("/chat/messages", p.ChatHandler.SendMessage)
		authedGroup.GET("/chat/conversations/:peerID", p.ChatHandler.GetConversation)
		authedGroup.GET("/chat/unread", p.ChatHandler.UnreadCount)
	}
}
