package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "residconnect/internal/interfaces/http/handlers/auth"
	tickethandlers "residconnect/internal/interfaces/http/handlers/ticket"
	"residconnect/internal/interfaces/http/middleware"
	"residconnect/internal/shared/authorization"
)

type TenantRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	Enforcer       *authorization.Enforcer
}

func SetupTenantRoutes(engine *gin.Engine, config *TenantRouteConfig) {
	tenant := engine.Group("/tenant")
	tenant.Use(config.AuthMiddleware.RequireAuth())
	{
		tenant.GET("/me",
			authorization.RequirePermission(config.Enforcer, authorization.ResourceProfile, authorization.ActionRead),
			config.AuthHandler.Me)

		tickets := tenant.Group("/tickets")
		{
			tickets.GET("",
				authorization.RequirePermission(config.Enforcer, authorization.ResourceTickets, authorization.ActionRead),
				config.TicketHandler.ListTenantTickets)
			tickets.POST("",
				authorization.RequirePermission(config.Enforcer, authorization.ResourceTickets, authorization.ActionCreate),
				config.TicketHandler.CreateTicket)

			// Registered before /:id so "upload" is not captured as an ID.
			tickets.POST("/upload",
				authorization.RequirePermission(config.Enforcer, authorization.ResourceAttachments, authorization.ActionCreate),
				config.TicketHandler.UploadImage)

			tickets.GET("/:id",
				authorization.RequirePermission(config.Enforcer, authorization.ResourceTickets, authorization.ActionRead),
				config.TicketHandler.GetTicket)
		}
	}
}
