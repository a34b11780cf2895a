package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/velora-boutique/velora-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.POST("/newsletter", controllers.SubscribeToNewsletter)
}
