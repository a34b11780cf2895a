package initializers

import (
	"log"

	"github.com/velora-boutique/velora-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.Address{}, &models.Order{}, &models.OrderItem{})
	log.Println("Database synced successfully.")
}
