package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "residconnect/internal/interfaces/http/handlers/ticket"
	"residconnect/internal/interfaces/http/middleware"
	"residconnect/internal/shared/authorization"
)

type ProfessionalRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	Enforcer       *authorization.Enforcer
}

func SetupProfessionalRoutes(engine *gin.Engine, config *ProfessionalRouteConfig) {
	professional := engine.Group("/professional")
	professional.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets := professional.Group("/tickets")
		{
			tickets.GET("",
				authorization.RequirePermission(config.Enforcer, authorization.ResourceAssignedTickets, authorization.ActionRead),
				config.TicketHandler.ListAssignedTickets)
			tickets.GET("/:id",
				authorization.RequirePermission(config.Enforcer, authorization.ResourceAssignedTickets, authorization.ActionRead),
				config.TicketHandler.GetTicket)
			tickets.PATCH("/:id",
				authorization.RequirePermission(config.Enforcer, authorization.ResourceAssignedTickets, authorization.ActionUpdate),
				config.TicketHandler.UpdateTicket)
		}
	}
}
