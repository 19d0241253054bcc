// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	CatalogHandler   *handler.CatalogHandler
	PromotionHandler *handler.PromotionHandler
	OrderHandler     *handler.OrderHandler
	ContactHandler   *handler.ContactHandler
	UploadHandler    *handler.UploadHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	catalogHandler   *handler.CatalogHandler
	promotionHandler *handler.PromotionHandler
	orderHandler     *handler.OrderHandler
	contactHandler   *handler.ContactHandler
	uploadHandler    *handler.UploadHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		catalogHandler:   params.CatalogHandler,
		promotionHandler: params.PromotionHandler,
		orderHandler:     params.OrderHandler,
		contactHandler:   params.ContactHandler,
		uploadHandler:    params.UploadHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", handler.HealthCheck)

	// Public storefront routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	api.GET("/categories", r.catalogHandler.ListCategories)
	api.GET("/products", r.catalogHandler.ListProducts)
	api.GET("/products/:id", r.catalogHandler.GetProduct)
	api.GET("/promotions", r.promotionHandler.ListActivePromotions)
	api.POST("/orders", r.orderHandler.SubmitOrder)
	api.POST("/contact", r.contactHandler.SubmitContact)

	// Admin routes require a valid token and the admin role
	admin := api.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireAdmin)
	{
		admin.GET("/users", r.authHandler.ListUsers)
		admin.PUT("/approve/:id", r.authHandler.ApproveUser)
		admin.DELETE("/users/:id", r.authHandler.DeleteUser)

		admin.POST("/categories", r.catalogHandler.CreateCategory)
		admin.PUT("/categories/:id", r.catalogHandler.UpdateCategory)
		admin.DELETE("/categories/:id", r.catalogHandler.DeleteCategory)

		admin.GET("/products", r.catalogHandler.ListAllProducts)
		admin.POST("/products", r.catalogHandler.CreateProduct)
		admin.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		admin.DELETE("/products/:id", r.catalogHandler.DeleteProduct)

		admin.GET("/promotions", r.promotionHandler.ListPromotions)
		admin.POST("/promotions", r.promotionHandler.CreatePromotion)
		admin.PUT("/promotions/:id", r.promotionHandler.UpdatePromotion)
		admin.DELETE("/promotions/:id", r.promotionHandler.DeletePromotion)

		admin.GET("/orders", r.orderHandler.ListOrders)
		admin.PUT("/orders/:id/status", r.orderHandler.UpdateStatus)
		admin.DELETE("/orders/:id", r.orderHandler.DeleteOrder)

		admin.GET("/contact", r.contactHandler.ListMessages)

		admin.POST("/upload", r.uploadHandler.Upload)
	}
}
