package routes

import (
	"github.com/gin-gonic/gin"

	"tradepost/internal/interfaces/http/handlers"
	"tradepost/internal/interfaces/http/middleware"
)

type OrderRouteConfig struct {
	OrderHandler   *handlers.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupOrderRoutes(engine *gin.Engine, config *OrderRouteConfig) {
	orders := engine.Group("/api/orders")
	orders.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		orders.POST("", config.OrderHandler.Create)
		orders.GET("", config.OrderHandler.List)

		// Lifecycle transitions
		orders.POST("/:id/confirm", config.OrderHandler.Confirm)
		orders.POST("/:id/cancel", config.OrderHandler.Cancel)
		orders.POST("/:id/reject", config.OrderHandler.Reject)
		orders.POST("/:id/complete", config.OrderHandler.Complete)
		orders.POST("/:id/refund",
			config.AuthMiddleware.RequireAdmin(),
			config.OrderHandler.Refund)
		orders.POST("/:id/review", config.OrderHandler.AddReview)

		// Generic parameterized routes (must come LAST)
		orders.GET("/:id", config.OrderHandler.Get)
		orders.DELETE("/:id", config.OrderHandler.Delete)
	}
}
