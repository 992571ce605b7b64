// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vitrine/internal/delivery/http/middleware"
	"vitrine/internal/delivery/http/router/handler"
	"vitrine/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	StoreHandler        *handler.StoreHandler
	CatalogHandler      *handler.CatalogHandler
	OrderHandler        *handler.OrderHandler
	BillingHandler      *handler.BillingHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
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
	staff := p.AuthMiddleware.RequireRole(entity.RoleAdmin, entity.RoleOwner, entity.RoleEmployee)
	managers := p.AuthMiddleware.RequireRole(entity.RoleAdmin, entity.RoleOwner)
	admins := p.AuthMiddleware.RequireRole(entity.RoleAdmin)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/login/google", p.UserHandler.GoogleLogin)
		authGroup.POST("/refresh", p.UserHandler.Refresh)
		authGroup.POST("/logout", p.UserHandler.Logout)
	}

	// Public storefront routes: no authentication, customers browse and order here
	publicGroup := api.Group("/public")
	{
		publicGroup.GET("/storefronts/:slug", p.CatalogHandler.Storefront)
		publicGroup.POST("/storefronts/:slug/orders", p.OrderHandler.Create)
		publicGroup.GET("/cities", p.StoreHandler.ListCities)
	}

	// Payment provider webhook: authenticated by signature, not by JWT
	api.POST("/webhooks/stripe", p.BillingHandler.Webhook)

	// User routes that require authentication
	userGroup := api.Group("/user", p.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/profile", p.UserHandler.GetProfile)
		userGroup.GET("/notifications", p.NotificationHandler.List)
		userGroup.GET("/notifications/stream", p.NotificationHandler.Stream)
		userGroup.PATCH("/notifications/read-all", p.NotificationHandler.MarkAllRead)
		userGroup.PATCH("/notifications/:notificationID/read", p.NotificationHandler.MarkRead)
	}

	// Store management routes
	storeGroup := api.Group("/stores", p.AuthMiddleware.Authenticate)
	{
		storeGroup.POST("", p.StoreHandler.Create, managers)
		storeGroup.GET("", p.StoreHandler.List, admins)
		storeGroup.GET("/:storeID", p.StoreHandler.Get, staff)
		storeGroup.PATCH("/:storeID", p.StoreHandler.Update, managers)
		storeGroup.POST("/:storeID/images/:kind", p.StoreHandler.UploadImage, managers)
		storeGroup.GET("/:storeID/qrcode", p.StoreHandler.QRCode, staff)

		storeGroup.POST("/:storeID/branches", p.StoreHandler.CreateBranch, managers)
		storeGroup.GET("/:storeID/branches", p.StoreHandler.ListBranches, staff)

		storeGroup.POST("/:storeID/addresses", p.StoreHandler.CreateAddress, managers)
		storeGroup.GET("/:storeID/addresses", p.StoreHandler.ListAddresses, staff)

		// Catalog administration
		storeGroup.POST("/:storeID/categories", p.CatalogHandler.CreateCategory, managers)
		storeGroup.GET("/:storeID/categories", p.CatalogHandler.ListCategories, staff)
		storeGroup.POST("/:storeID/attributes", p.CatalogHandler.CreateAttribute, managers)
		storeGroup.GET("/:storeID/attributes", p.CatalogHandler.ListAttributes, staff)
		storeGroup.POST("/:storeID/products", p.CatalogHandler.CreateProduct, managers)
		storeGroup.GET("/:storeID/products", p.CatalogHandler.ListProducts, staff)

		// Orders
		storeGroup.GET("/:storeID/orders", p.OrderHandler.List, staff)

		// Billing
		storeGroup.POST("/:storeID/billing/checkout", p.BillingHandler.CreateCheckout, managers)
		storeGroup.GET("/:storeID/billing/subscription", p.BillingHandler.GetSubscription, staff)
		storeGroup.DELETE("/:storeID/billing/subscription", p.BillingHandler.CancelSubscription, managers)
	}

	// Branch and address routes addressed by their own id
	branchGroup := api.Group("/branches", p.AuthMiddleware.Authenticate, managers)
	{
		branchGroup.PATCH("/:branchID", p.StoreHandler.UpdateBranch)
		branchGroup.DELETE("/:branchID", p.StoreHandler.DeleteBranch)
	}
	addressGroup := api.Group("/addresses", p.AuthMiddleware.Authenticate, managers)
	{
		addressGroup.PATCH("/:addressID", p.StoreHandler.UpdateAddress)
		addressGroup.DELETE("/:addressID", p.StoreHandler.DeleteAddress)
	}

	// Category and attribute routes addressed by their own id
	categoryGroup := api.Group("/categories", p.AuthMiddleware.Authenticate, managers)
	{
		categoryGroup.PATCH("/:categoryID", p.CatalogHandler.UpdateCategory)
		categoryGroup.DELETE("/:categoryID", p.CatalogHandler.DeleteCategory)
	}
	attributeGroup := api.Group("/attributes", p.AuthMiddleware.Authenticate, managers)
	{
		attributeGroup.DELETE("/:attributeID", p.CatalogHandler.DeleteAttribute)
		attributeGroup.POST("/:attributeID/values", p.CatalogHandler.CreateAttributeValue)
		attributeGroup.GET("/:attributeID/values", p.CatalogHandler.ListAttributeValues)
	}
	valueGroup := api.Group("/attribute-values", p.AuthMiddleware.Authenticate, managers)
	{
		valueGroup.DELETE("/:valueID", p.CatalogHandler.DeleteAttributeValue)
	}

	// Product and variation routes addressed by their own id
	productGroup := api.Group("/products", p.AuthMiddleware.Authenticate, staff)
	{
		productGroup.GET("/:productID", p.CatalogHandler.GetProduct)
		productGroup.PATCH("/:productID", p.CatalogHandler.UpdateProduct, managers)
		productGroup.DELETE("/:productID", p.CatalogHandler.DeleteProduct, managers)
		productGroup.POST("/:productID/image", p.CatalogHandler.UploadProductImage, managers)
		productGroup.POST("/:productID/variations", p.CatalogHandler.CreateVariation, managers)
	}
	variationGroup := api.Group("/variations", p.AuthMiddleware.Authenticate, staff)
	{
		variationGroup.PATCH("/:variationID", p.CatalogHandler.UpdateVariation, managers)
		variationGroup.DELETE("/:variationID", p.CatalogHandler.DeleteVariation, managers)
		variationGroup.POST("/:variationID/attribute-values", p.CatalogHandler.AttachAttributeValue, managers)
		variationGroup.PUT("/:variationID/stock", p.CatalogHandler.SetStock)
		variationGroup.GET("/:variationID/stock", p.CatalogHandler.GetStock)
	}
	linkGroup := api.Group("/variant-attributes", p.AuthMiddleware.Authenticate, managers)
	{
		linkGroup.DELETE("/:linkID", p.CatalogHandler.DetachAttributeValue)
	}

	// Orders addressed by their own id
	orderGroup := api.Group("/orders", p.AuthMiddleware.Authenticate, staff)
	{
		orderGroup.GET("/:orderID", p.OrderHandler.Get)
		orderGroup.PATCH("/:orderID/status", p.OrderHandler.UpdateStatus)
	}
}
