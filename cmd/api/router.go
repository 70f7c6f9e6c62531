package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"autocart-backend/internal/shared/middleware"
	"autocart-backend/pkg/container"
)

// NewRouter wires the HTTP surface. Every /api/v1 route goes through owner
// resolution so carts and wishlists work for guests and signed-in users
// alike; routes under /me that touch accounts or orders additionally
// require a valid token.
func NewRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheck(c))

	v1 := router.Group("/api/v1")
	v1.Use(
		middleware.OptionalAuth(c.JWTManager),
		middleware.Owner(middleware.DefaultOwnerConfig()),
	)

	// Product catalog, public
	v1.GET("/products", c.CatalogHandler.ListProducts)
	v1.GET("/products/:id", c.CatalogHandler.GetProduct)

	// Authentication
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.AccountHandler.Register)
		auth.POST("/login", c.AccountHandler.Login)
		auth.POST("/logout", middleware.AuthMiddleware(c.JWTManager), c.AccountHandler.Logout)
	}

	me := v1.Group("/me")

	// Cart and wishlist follow the resolved owner, no login needed
	cart := me.Group("/cart")
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.POST("/items", c.CartHandler.AddItem)
		cart.PATCH("/items/:id", c.CartHandler.UpdateQuantity)
		cart.DELETE("/items/:id", c.CartHandler.RemoveItem)
		cart.DELETE("", c.CartHandler.ClearCart)
		cart.POST("/coupon", c.CartHandler.ApplyCoupon)
		cart.DELETE("/coupon", c.CartHandler.RemoveCoupon)
	}

	wishlist := me.Group("/wishlist")
	{
		wishlist.GET("", c.WishlistHandler.GetWishlist)
		wishlist.POST("", c.WishlistHandler.Add)
		wishlist.POST("/toggle", c.WishlistHandler.Toggle)
		wishlist.DELETE("/:productId", c.WishlistHandler.Remove)
		wishlist.DELETE("", c.WishlistHandler.Clear)
	}

	// Profile, addresses, and orders need an authenticated user
	private := me.Group("")
	private.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		private.GET("/profile", c.AccountHandler.GetProfile)
		private.PUT("/profile", c.AccountHandler.UpdateProfile)

		private.GET("/addresses", c.AccountHandler.ListAddresses)
		private.POST("/addresses", c.AccountHandler.AddAddress)
		private.PUT("/addresses/:addressId", c.AccountHandler.UpdateAddress)
		private.DELETE("/addresses/:addressId", c.AccountHandler.DeleteAddress)
		private.PUT("/addresses/:addressId/default", c.AccountHandler.SetDefaultAddress)

		private.POST("/orders", c.OrderHandler.Checkout)
		private.GET("/orders", c.OrderHandler.ListOrders)
		private.GET("/orders/:orderId", c.OrderHandler.GetOrder)
		private.POST("/orders/:orderId/cancel", c.OrderHandler.CancelOrder)
	}

	return router
}

func healthCheck(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		overall := "ok"
		store := "up"
		if err := c.Store.Ping(checkCtx); err != nil {
			status = http.StatusServiceUnavailable
			overall = "degraded"
			store = "down"
		}

		ctx.JSON(status, gin.H{
			"status":  overall,
			"version": c.Config.App.Version,
			"store":   store,
		})
	}
}
