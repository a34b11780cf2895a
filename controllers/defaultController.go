package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Velora Boutique API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/verify-email/:activationToken" - Activate user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password

PRODUCT
- GET "/product" - List products (category, search, minPrice, maxPrice, sort)
- GET "/product/featured" - List featured products
- GET "/product/{id}" - Get product by ID
- POST "/product-images" - Upload catalog imagery (admin)

CART
- GET "/cart" - Get the current cart
- POST "/cart" - Add an item to the cart
- PATCH "/cart/:productId" - Update an item's quantity
- DELETE "/cart/:productId" - Remove an item
- DELETE "/cart" - Clear the cart

ADDRESS
- GET "/addresses" - List addresses
- POST "/addresses" - Add an address
- PUT "/addresses/:addressId" - Update an address
- DELETE "/addresses/:addressId" - Delete an address
- PATCH "/addresses/:addressId/default" - Set the default address

ORDER
- POST "/order" - Place an order from the current cart
- GET "/orders" - List your orders
- GET "/order/:reference" - Get an order by reference

NEWSLETTER
- POST "/newsletter" - Subscribe to the newsletter`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
