package routes

import (
	"github.com/thanushwork/dhaloesh-fastfood-api/handlers"
	"github.com/thanushwork/dhaloesh-fastfood-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/signup", handlers.Signup)
		public.POST("/auth/login", handlers.Login)

		// Catalog browsing needs no account
		public.GET("/menu", handlers.GetMenu)

		// Payment link for the checkout dialog
		public.GET("/payments/upi-link", handlers.UPILink)

		// Fired by the checkout flow right after order creation
		public.POST("/whatsapp/order-notification", handlers.SendOrderNotification)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/profile", handlers.GetProfile)
		auth.PUT("/auth/profile", handlers.UpdateProfile)

		auth.POST("/orders", handlers.CreateOrder)
		auth.GET("/orders/user", handlers.GetUserOrders)
	}

	// ── Admin back-office ──────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.POST("/menu", handlers.CreateMenuItem)
		admin.PUT("/menu/:id", handlers.UpdateMenuItem)
		admin.DELETE("/menu/:id", handlers.DeleteMenuItem)

		admin.GET("/orders", handlers.GetAllOrders)
		admin.GET("/orders/stats", handlers.GetOrderStats)
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus)

		admin.GET("/analytics/trends", handlers.GetTrends)
		admin.GET("/analytics/categories", handlers.GetCategoryBreakdown)
		admin.POST("/analytics/export", handlers.ExportOrdersCSV)
	}
}
