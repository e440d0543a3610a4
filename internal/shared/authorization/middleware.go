package authorization

import (
	"github.com/gin-gonic/gin"

	"residconnect/internal/shared/constants"
	"residconnect/internal/shared/utils"
)

// RequirePermission gates a route on the endpoint role policy. It runs
// after the auth middleware has stored the caller's role in the context.
func RequirePermission(enforcer *Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !ok {
			utils.ErrorResponse(c, 403, "Accès refusé")
			c.Abort()
			return
		}

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil || !allowed {
			switch {
			case resource == ResourceTickets || resource == ResourceAttachments:
				utils.ErrorResponse(c, 403, "Accès réservé aux locataires")
			case resource == ResourceAssignedTickets:
				utils.ErrorResponse(c, 403, "Accès réservé aux professionnels")
			default:
				utils.ErrorResponse(c, 403, "Accès refusé")
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
