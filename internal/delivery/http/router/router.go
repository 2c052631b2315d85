// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"posterstore/internal/delivery/http/middleware"
	"posterstore/internal/delivery/http/router/handler"
	"posterstore/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	AdminHandler    *handler.AdminHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	ProfileHandler  *handler.ProfileHandler
	SessionHandler  *handler.SessionHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RequestID       *middleware.RequestIDMiddleware
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
	e.Use(r.params.RequestID.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.SessionHandler.Login)
		authGroup.POST("/logout", r.params.SessionHandler.Logout)
		authGroup.GET("/session", r.params.SessionHandler.GetSession)
	}

	// Catalog browsing and favorites
	e.GET("/posters", r.params.CatalogHandler.ListPosters)
	e.GET("/posters/:id", r.params.CatalogHandler.GetPoster)
	e.GET("/favorites", r.params.CatalogHandler.ListFavorites)
	e.POST("/favorites/:id/toggle", r.params.CatalogHandler.ToggleFavorite)

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.GET("/events", r.params.CartHandler.StreamEvents)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.params.CartHandler.SetQuantity)
		cartGroup.DELETE("/items/:id", r.params.CartHandler.RemoveItem)
	}

	// Checkout flow
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.GET("/quote", r.params.CheckoutHandler.Quote)
		checkoutGroup.POST("/orders", r.params.CheckoutHandler.PlaceOrder)
		checkoutGroup.GET("/state", r.params.CheckoutHandler.State)
	}

	// Profile and order history
	e.GET("/profile", r.params.ProfileHandler.GetProfile)
	e.PUT("/profile", r.params.ProfileHandler.SaveProfile)
	e.GET("/orders", r.params.ProfileHandler.ListOrders)
	e.GET("/orders/:id", r.params.ProfileHandler.GetOrder)
	e.GET("/orders/:id/receipt", r.params.ProfileHandler.GetOrderReceipt)

	// Catalog management requires authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/posters", r.params.AdminHandler.CreatePoster)
		adminGroup.PUT("/posters/:id", r.params.AdminHandler.UpdatePoster)
		adminGroup.DELETE("/posters/:id", r.params.AdminHandler.DeletePoster)
	}
}
