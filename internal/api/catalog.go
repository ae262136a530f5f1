package api

import (
	"net/http"                     // HTTP status codes
	"store_system/internal/domain" // Importing domain models
	"store_system/internal/utils"  // Utility functions
	"strconv"                      // String conversion
	"time"                         // Cache TTL

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// Cache keys for catalog reads, invalidated on product mutations
const (
	featuredCacheKey = "catalog:featured" // Landing page featured products
	featuredCacheTTL = 60 * time.Second   // Short TTL, prices may change
)

// HomeHandler returns a bounded sample of products per category for the landing page
func HomeHandler(db *gorm.DB, rdb *redis.Client, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context() // Request context for Redis
		// Try to get cached featured products
		var cached map[string][]domain.Product
		found, err := utils.GetCache(ctx, rdb, featuredCacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"featured": cached, "cached": true}) // Serve from cache
			return
		}
		featured := make(map[string][]domain.Product) // Featured products keyed by category
		// Fetch up to limit products from each category
		for _, category := range []string{domain.CategoryFood, domain.CategoryFlowers, domain.CategoryHeritage} {
			var products []domain.Product
			if err := db.Where("category = ?", category).Limit(limit).Find(&products).Error; err != nil {
				// If the query fails, return internal server error
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
				return
			}
			featured[category] = products // Collect the category sample
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, featuredCacheKey, featured, featuredCacheTTL)
		c.JSON(http.StatusOK, gin.H{"featured": featured, "cached": false}) // Return the response
	}
}

// ListProductsHandler returns products filtered by category and/or search term
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&domain.Product{}) // Start building the query
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category) // Exact category match
		}
		if search := c.Query("search"); search != "" {
			query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%") // Case-insensitive substring match
		}
		var products []domain.Product // Slice to hold products
		// Execute the query, no pagination
		if err := query.Find(&products).Error; err != nil {
			// If the query fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		// Return the matching products
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GetProductHandler returns a single product by ID
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("id")) // Parse the product ID
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		var product domain.Product // Fetch product from database
		if err := db.First(&product, productID).Error; err != nil {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		// Return the product
		c.JSON(http.StatusOK, product)
	}
}
