// Package router registers the view API routes.
package router

import (
	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router/handler"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	CartHandler      *handler.CartHandler
	CatalogHandler   *handler.CatalogHandler
	OrderHandler     *handler.OrderHandler
	AccountHandler   *handler.AccountHandler
	MessagingHandler *handler.MessagingHandler
	KYCHandler       *handler.KYCHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the view API routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.AuthHandler.Login)
		authGroup.GET("/google", r.AuthHandler.GoogleLogin)
		authGroup.POST("/google/callback", r.AuthHandler.GoogleCallback)
		authGroup.POST("/logout", r.AuthHandler.Logout)
		authGroup.GET("/me", r.AuthHandler.Me, r.AuthMiddleware.Authenticate)
	}

	// Catalog browsing works signed out.
	e.GET("/categories", r.CatalogHandler.Categories)
	e.GET("/products", r.CatalogHandler.SearchProducts)
	e.GET("/products/:id", r.CatalogHandler.GetProduct)

	searchGroup := e.Group("/searches")
	{
		searchGroup.GET("", r.CatalogHandler.RecentSearches)
		searchGroup.POST("", r.CatalogHandler.AddSearch)
		searchGroup.DELETE("", r.CatalogHandler.RemoveSearch)
		searchGroup.DELETE("/all", r.CatalogHandler.ClearSearches)
	}

	userGroup := e.Group("")
	userGroup.Use(r.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/cart", r.CartHandler.GetCart)
		userGroup.POST("/cart/items", r.CartHandler.AddItem)
		userGroup.PATCH("/cart/items/:id", r.CartHandler.UpdateItem)
		userGroup.DELETE("/cart/items/:id", r.CartHandler.RemoveItem)
		userGroup.DELETE("/cart", r.CartHandler.Clear)

		userGroup.GET("/wishlist", r.CartHandler.GetWishlist)
		userGroup.POST("/wishlist", r.CartHandler.AddToWishlist)
		userGroup.POST("/wishlist/:productId/toggle", r.CartHandler.ToggleWishlist)
		userGroup.DELETE("/wishlist/:productId", r.CartHandler.RemoveFromWishlist)

		userGroup.GET("/orders", r.OrderHandler.ListMine)
		userGroup.GET("/orders/:id", r.OrderHandler.Get)
		userGroup.POST("/orders/:id/cancel", r.OrderHandler.Cancel)

		userGroup.GET("/addresses", r.AccountHandler.ListAddresses)
		userGroup.POST("/addresses", r.AccountHandler.CreateAddress)
		userGroup.PUT("/addresses/:id", r.AccountHandler.UpdateAddress)
		userGroup.DELETE("/addresses/:id", r.AccountHandler.DeleteAddress)
		userGroup.POST("/addresses/:id/default", r.AccountHandler.SetDefaultAddress)

		userGroup.GET("/sessions", r.AccountHandler.ListSessions)
		userGroup.DELETE("/sessions/:id", r.AccountHandler.RevokeSession)
		userGroup.DELETE("/sessions", r.AccountHandler.RevokeOtherSessions)

		userGroup.GET("/inbox", r.MessagingHandler.Inbox)
		userGroup.POST("/inbox/:id/read", r.MessagingHandler.MarkMessageRead)
		userGroup.DELETE("/inbox/:id", r.MessagingHandler.DeleteMessage)

		userGroup.GET("/notifications", r.MessagingHandler.Notifications)
		userGroup.POST("/notifications/:id/read", r.MessagingHandler.MarkNotificationRead)
		userGroup.POST("/notifications/read", r.MessagingHandler.MarkAllNotificationsRead)
	}

	kycGroup := e.Group("/kyc")
	kycGroup.Use(r.AuthMiddleware.Authenticate)
	{
		kycGroup.GET("", r.KYCHandler.GetWizard)
		kycGroup.PUT("/personal", r.KYCHandler.SavePersonal)
		kycGroup.PUT("/location", r.KYCHandler.EditLocation)
		kycGroup.PUT("/shop", r.KYCHandler.SaveShop)
		kycGroup.PUT("/bank", r.KYCHandler.SaveBank)
		kycGroup.PUT("/review", r.KYCHandler.SaveReview)
		kycGroup.POST("/email/code", r.KYCHandler.SendEmailCode)
		kycGroup.POST("/email/verify", r.KYCHandler.VerifyEmail)
		kycGroup.POST("/location/verify", r.KYCHandler.VerifyLocation)
		kycGroup.GET("/location/status", r.KYCHandler.LocationStatus)
		kycGroup.POST("/location/readings", r.KYCHandler.PublishReading)
		kycGroup.POST("/location/errors", r.KYCHandler.PublishError)
		kycGroup.POST("/draft", r.KYCHandler.SaveDraft)
		kycGroup.POST("/draft/restore", r.KYCHandler.RestoreDraft)
		kycGroup.DELETE("/draft", r.KYCHandler.DiscardDraft)
		kycGroup.POST("/submit", r.KYCHandler.Submit)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.AuthMiddleware.Authenticate)
	adminGroup.Use(r.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.AdminHandler.Dashboard)
		adminGroup.GET("/users", r.AdminHandler.ListUsers)
		adminGroup.GET("/users/:id", r.AdminHandler.GetUser)
		adminGroup.PATCH("/users/:id/status", r.AdminHandler.UpdateUserStatus)
		adminGroup.GET("/vendors", r.AdminHandler.Vendors)
		adminGroup.PATCH("/vendors/:id/status", r.AdminHandler.UpdateVendorStatus)
		adminGroup.GET("/vendors/:id/qr", r.AdminHandler.VendorQR)
		adminGroup.GET("/orders", r.OrderHandler.ListAll)
		adminGroup.PATCH("/orders/:id/status", r.OrderHandler.UpdateStatus)
	}
}
