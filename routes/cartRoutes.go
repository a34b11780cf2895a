package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/velora-boutique/velora-api/cart"
	"github.com/velora-boutique/velora-api/catalog"
	"github.com/velora-boutique/velora-api/controllers"
	"github.com/velora-boutique/velora-api/middlewares"
)

func CartRoutes(server *gin.Engine, carts *cart.Manager, products *catalog.Store) {
	group := server.Group("/cart", middlewares.RequireAuth())
	{
		group.GET("", controllers.GetCart(carts))
		group.POST("", controllers.AddToCart(carts, products))
		group.PATCH("/:productId", controllers.UpdateCartQuantity(carts))
		group.DELETE("/:productId", controllers.RemoveFromCart(carts))
		group.DELETE("", controllers.ClearCart(carts))
	}
}
