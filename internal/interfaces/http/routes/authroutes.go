package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "residconnect/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
	}
}
