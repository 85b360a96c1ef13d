package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant-management-api/handlers"
	"restaurant-management-api/middleware"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
	}

	// ── Authenticated routes ───────────────────────────────────────
	// Privilege checks beyond authentication go through the policy
	// capability table inside the handlers, not through per-route
	// role middleware.
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		// Catalog
		auth.GET("/categories", handlers.ListCategories)
		auth.POST("/categories", handlers.CreateCategory)
		auth.GET("/menu-items", handlers.ListMenuItems)
		auth.POST("/menu-items", handlers.CreateMenuItem)
		auth.GET("/menu-items/:id", handlers.GetMenuItem)
		auth.PUT("/menu-items/:id", handlers.UpdateMenuItem)
		auth.PATCH("/menu-items/:id", handlers.UpdateMenuItem)
		auth.DELETE("/menu-items/:id", handlers.DeleteMenuItem)

		// Cart
		auth.GET("/cart/menu-items", handlers.GetCart)
		auth.POST("/cart/menu-items", handlers.AddToCart)
		auth.DELETE("/cart/menu-items", handlers.ClearCart)

		// Orders
		auth.GET("/orders", handlers.ListOrders)
		auth.POST("/orders", handlers.CreateOrder)
		auth.GET("/orders/:id", handlers.GetOrder)
		auth.PUT("/orders/:id", handlers.UpdateOrder)
		auth.PATCH("/orders/:id", handlers.UpdateOrder)

		// Group membership, keyed by username in the payload
		auth.GET("/groups/manager/users", handlers.ListManagers)
		auth.POST("/groups/manager/users", handlers.AddManager)
		auth.DELETE("/groups/manager/users", handlers.RemoveManager)
		auth.GET("/groups/delivery-crew/users", handlers.ListDeliveryCrew)
		auth.POST("/groups/delivery-crew/users", handlers.AddDeliveryCrew)
		auth.DELETE("/groups/delivery-crew/users", handlers.RemoveDeliveryCrew)
	}
}
