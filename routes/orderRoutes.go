package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/velora-boutique/velora-api/cart"
	"github.com/velora-boutique/velora-api/controllers"
	"github.com/velora-boutique/velora-api/middlewares"
)

func OrderRoutes(server *gin.Engine, carts *cart.Manager) {
	server.POST("/order", middlewares.RequireAuth(), controllers.PlaceOrder(carts))
	server.GET("/orders", middlewares.RequireAuth(), controllers.GetOrders)
	server.GET("/order/:reference", middlewares.RequireAuth(), controllers.GetOrderByReference)
}
