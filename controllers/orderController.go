package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/velora-boutique/velora-api/cart"
	"github.com/velora-boutique/velora-api/checkout"
	"github.com/velora-boutique/velora-api/initializers"
	"github.com/velora-boutique/velora-api/models"
	"github.com/velora-boutique/velora-api/utils"
)

// PlaceOrder creates an order from the user's current cart. The cart is NOT
// cleared here: the client shows its confirmation screen first and then calls
// DELETE /cart.
func PlaceOrder(carts *cart.Manager) gin.HandlerFunc {
	type placeOrderBody struct {
		AddressID     uint   `json:"addressId" binding:"required"`
		PaymentMethod string `json:"paymentMethod" binding:"required"`
	}

	return func(ctx *gin.Context) {
		var body placeOrderBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			log.Println("Bind error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
			return
		}

		userID := currentUserID(ctx)
		lines := carts.Engine(userID).Lines()

		order, err := checkout.PlaceOrder(initializers.DB, userID, body.AddressID, lines, checkout.PaymentMethod(body.PaymentMethod))
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrUnauthenticated):
				sendErrorResponse(ctx, http.StatusUnauthorized, "Please sign in to place an order")
			case errors.Is(err, checkout.ErrNoAddress):
				sendErrorResponse(ctx, http.StatusBadRequest, "Please select a delivery address")
			case errors.Is(err, checkout.ErrEmptyCart):
				sendErrorResponse(ctx, http.StatusBadRequest, "Your cart is empty")
			case errors.Is(err, checkout.ErrInvalidPayment):
				sendErrorResponse(ctx, http.StatusBadRequest, "Please select a payment method")
			case errors.Is(err, checkout.ErrOrderItems):
				// The order row exists without items; surface it with the
				// reference so support can reconcile.
				log.Println("Order items error:", err)
				sendJSONResponse(ctx, http.StatusInternalServerError, gin.H{
					"message":   "Order was created but its items could not be saved. Contact support.",
					"reference": order.Reference,
				})
			default:
				log.Println("Order creation error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to place order")
			}
			return
		}

		if email := currentUserEmail(ctx); email != "" {
			if err := sendOrderConfirmationEmail(email, order); err != nil {
				log.Println("Error sending order confirmation email:", err)
			}
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{
			"message": "Order placed successfully!",
			"order":   order,
		})
	}
}

func sendOrderConfirmationEmail(email string, order *models.Order) error {
	emailData := utils.EmailData{
		Message:           "Thank you for your order! We are preparing it for shipment.",
		OrderReference:    order.Reference,
		OrderTotal:        fmt.Sprintf("$%.2f", order.TotalPrice),
		EstimatedDelivery: order.EstimatedDelivery.Format("Monday, 2 January 2006"),
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return utils.SendEmail(email, "Your Velora Order Confirmation", emailData, templatePath)
}

// GetOrders returns the authenticated user's orders, newest first, with items
// and the shipping address joined in.
func GetOrders(ctx *gin.Context) {
	var orders []models.Order
	result := initializers.DB.
		Preload("OrderItems").
		Preload("Address").
		Where("user_id = ?", currentUserID(ctx)).
		Order("created_at DESC").
		Find(&orders)

	if result.Error != nil {
		log.Println("Failed to fetch orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOrderByReference returns a single order by its customer-facing reference.
func GetOrderByReference(ctx *gin.Context) {
	reference := ctx.Param("reference")

	var order models.Order
	result := initializers.DB.
		Preload("OrderItems").
		Preload("Address").
		Where("reference = ? AND user_id = ?", reference, currentUserID(ctx)).
		First(&order)

	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}
