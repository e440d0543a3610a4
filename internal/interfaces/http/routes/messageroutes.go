package routes

import (
	"github.com/gin-gonic/gin"

	messagehandlers "residconnect/internal/interfaces/http/handlers/message"
	"residconnect/internal/interfaces/http/middleware"
	"residconnect/internal/shared/authorization"
)

type MessageRouteConfig struct {
	MessageHandler *messagehandlers.MessageHandler
	AuthMiddleware *middleware.AuthMiddleware
	Enforcer       *authorization.Enforcer
}

func SetupMessageRoutes(engine *gin.Engine, config *MessageRouteConfig) {
	messages := engine.Group("/messages")
	messages.Use(config.AuthMiddleware.RequireAuth())
	{
		messages.GET("",
			authorization.RequirePermission(config.Enforcer, authorization.ResourceMessages, authorization.ActionRead),
			config.MessageHandler.ListMessages)
		messages.POST("",
			authorization.RequirePermission(config.Enforcer, authorization.ResourceMessages, authorization.ActionCreate),
			config.MessageHandler.CreateMessage)
	}
}
