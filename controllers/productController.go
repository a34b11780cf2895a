package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velora-boutique/velora-api/catalog"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// GetProducts lists the catalog, filtered and sorted by query parameters:
// category, search, minPrice, maxPrice, sort (featured | price-asc |
// price-desc | name).
func GetProducts(products *catalog.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		minPrice, _ := strconv.ParseFloat(ctx.DefaultQuery("minPrice", "0"), 64)
		maxPrice, _ := strconv.ParseFloat(ctx.DefaultQuery("maxPrice", "0"), 64)

		result := products.Find(catalog.Filter{
			Category: ctx.Query("category"),
			Search:   ctx.Query("search"),
			MinPrice: minPrice,
			MaxPrice: maxPrice,
			Sort:     ctx.DefaultQuery("sort", catalog.SortFeatured),
		})

		ctx.JSON(http.StatusOK, gin.H{
			"products": result,
			"metadata": gin.H{
				"total":      len(result),
				"categories": products.Categories(),
			},
		})
	}
}

func GetProduct(products *catalog.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
			return
		}

		product, ok := products.ByID(productID)
		if !ok {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
			return
		}

		ctx.JSON(http.StatusOK, product)
	}
}

func GetFeaturedProducts(products *catalog.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"products": products.Featured()})
	}
}
