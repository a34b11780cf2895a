package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/velora-boutique/velora-api/catalog"
	"github.com/velora-boutique/velora-api/controllers"
	"github.com/velora-boutique/velora-api/middlewares"
)

func ProductRoutes(server *gin.Engine, products *catalog.Store) {
	server.GET("/product", controllers.GetProducts(products))
	server.GET("/product/featured", controllers.GetFeaturedProducts(products))
	server.GET("/product/:id", controllers.GetProduct(products))
	server.POST("/product-images", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UploadCatalogAssets)
}
