package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velora-boutique/velora-api/cart"
	"github.com/velora-boutique/velora-api/catalog"
)

// Cart handlers close over the cart manager instead of reaching for a global:
// cart state is process-local, so the store object is injected where the
// DB-backed controllers use initializers.DB.

func cartPayload(engine *cart.Engine) gin.H {
	return gin.H{
		"items":      engine.Lines(),
		"totalItems": engine.TotalItems(),
		"totalPrice": engine.TotalPrice(),
	}
}

func GetCart(carts *cart.Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		engine := carts.Engine(currentUserID(ctx))
		sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cartPayload(engine)})
	}
}

func AddToCart(carts *cart.Manager, products *catalog.Store) gin.HandlerFunc {
	type addToCartBody struct {
		ProductID int    `json:"productId" binding:"required,min=1"`
		Quantity  int    `json:"quantity" binding:"required,min=1"`
		Color     string `json:"color"`
		Size      string `json:"size"`
	}

	return func(ctx *gin.Context) {
		var body addToCartBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			log.Println("Bind error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
			return
		}

		product, ok := products.ByID(body.ProductID)
		if !ok {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
			return
		}

		engine := carts.Engine(currentUserID(ctx))
		outcome, err := engine.AddToCart(product, body.Quantity, body.Color, body.Size)
		if err != nil {
			log.Println("Add to cart error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to add item to cart")
			return
		}

		message := product.Name + " added to cart"
		status := http.StatusCreated
		if outcome == cart.OutcomeUpdated {
			message = "Cart item quantity updated"
			status = http.StatusOK
		}

		sendJSONResponse(ctx, status, gin.H{
			"message": message,
			"outcome": outcome,
			"cart":    cartPayload(engine),
		})
	}
}

func UpdateCartQuantity(carts *cart.Manager) gin.HandlerFunc {
	// The engine itself applies any quantity; the lower bound lives here, the
	// same caller-side guard the storefront UI applies before decrementing.
	type updateQuantityBody struct {
		Quantity int `json:"quantity" binding:"required,min=1"`
	}

	return func(ctx *gin.Context) {
		productID, err := strconv.Atoi(ctx.Param("productId"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var body updateQuantityBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
			return
		}

		engine := carts.Engine(currentUserID(ctx))
		if err := engine.UpdateQuantity(productID, body.Quantity); err != nil {
			log.Println("Update quantity error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart item quantity.")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cartPayload(engine)})
	}
}

func RemoveFromCart(carts *cart.Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, err := strconv.Atoi(ctx.Param("productId"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
			return
		}

		engine := carts.Engine(currentUserID(ctx))
		removed, err := engine.RemoveFromCart(productID)
		if err != nil {
			log.Println("Remove from cart error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to remove item from cart")
			return
		}

		message := "Item was not in the cart"
		if removed {
			message = "Item removed from cart"
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": message,
			"removed": removed,
			"cart":    cartPayload(engine),
		})
	}
}

func ClearCart(carts *cart.Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		engine := carts.Engine(currentUserID(ctx))
		if err := engine.ClearCart(); err != nil {
			log.Println("Clear cart error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to clear cart")
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Cart cleared",
			"cart":    cartPayload(engine),
		})
	}
}
