package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/velora-boutique/velora-api/controllers"
	"github.com/velora-boutique/velora-api/middlewares"
)

func AddressRoutes(server *gin.Engine) {
	group := server.Group("/addresses", middlewares.RequireAuth())
	{
		group.GET("", controllers.GetAddresses)
		group.POST("", controllers.CreateAddress)
		group.PUT("/:addressId", controllers.UpdateAddress)
		group.DELETE("/:addressId", controllers.DeleteAddress)
		group.PATCH("/:addressId/default", controllers.SetDefaultAddress)
	}
}
