package routes

import (
	"github.com/gin-gonic/gin"

	"tradepost/internal/interfaces/http/handlers"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/refresh-token", config.AuthHandler.RefreshToken)
	}
}
