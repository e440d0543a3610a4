package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "residconnect",
		})
	})
}
