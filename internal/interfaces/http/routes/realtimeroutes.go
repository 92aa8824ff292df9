package routes

import (
	"github.com/gin-gonic/gin"

	"tradepost/internal/interfaces/http/handlers/ws"
	"tradepost/internal/interfaces/http/middleware"
)

type RealtimeRouteConfig struct {
	WSHandler      *ws.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRealtimeRoutes(engine *gin.Engine, config *RealtimeRouteConfig) {
	engine.GET("/ws",
		config.AuthMiddleware.RequireAuth(),
		config.WSHandler.Connect)
}
