package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/velora-boutique/velora-api/cart"
	"github.com/velora-boutique/velora-api/catalog"
	"github.com/velora-boutique/velora-api/initializers"
	"github.com/velora-boutique/velora-api/routes"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	products := catalog.NewStore()

	cartDir := os.Getenv("CART_DATA_DIR")
	if cartDir == "" {
		cartDir = "data/carts"
	}
	cartStore, err := cart.NewFileStore(cartDir)
	if err != nil {
		log.Fatal("Failed to open cart storage: ", err)
	}
	carts := cart.NewManager(cartStore)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://www.velora.boutique"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ProductRoutes(server, products)
	routes.CartRoutes(server, carts, products)
	routes.AddressRoutes(server)
	routes.OrderRoutes(server, carts)
	server.Run()
}
