package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
)

// SubscribeToNewsletter relays a subscription to the external campaign
// provider. The provider owns the list; we only forward the address.
func SubscribeToNewsletter(ctx *gin.Context) {
	type subscribeBody struct {
		Email string `json:"email" binding:"required,email"`
	}

	var body subscribeBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	providerURL := os.Getenv("NEWSLETTER_API_URL")
	apiKey := os.Getenv("NEWSLETTER_API_KEY")
	if providerURL == "" || apiKey == "" {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Missing newsletter configuration")
		return
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).
		R().
		SetHeaders(map[string]string{
			"Authorization": "Bearer " + apiKey,
			"Accept":        "application/json",
			"Content-Type":  "application/json",
		}).
		SetBody(map[string]string{
			"email": body.Email,
			"list":  os.Getenv("NEWSLETTER_LIST_ID"),
		}).
		Post(providerURL)

	if err != nil {
		log.Println("Newsletter provider error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, "Failed to subscribe, try again later.")
		return
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		log.Printf("Newsletter provider returned %d: %s", resp.StatusCode(), string(resp.Body()))
		sendErrorResponse(ctx, http.StatusBadGateway, "Failed to subscribe, try again later.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Subscribed to the newsletter."})
}
