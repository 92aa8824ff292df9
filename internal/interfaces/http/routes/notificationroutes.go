package routes

import (
	"github.com/gin-gonic/gin"

	"tradepost/internal/interfaces/http/handlers"
	"tradepost/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/api/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.List)
		notifications.GET("/unread-count", config.NotificationHandler.UnreadCount)
		notifications.PUT("/read-all", config.NotificationHandler.MarkAllAsRead)
		notifications.PUT("/:id/read", config.NotificationHandler.MarkAsRead)
	}
}
