package api

import (
	"net/http"                     // HTTP status codes
	"store_system/internal/config" // Application configuration
	"store_system/internal/domain" // Importing domain models
	"store_system/internal/utils"  // Utility functions
	"strconv"                      // String conversion
	"time"                         // Cache TTL

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// Cache key for the admin dashboard summary
const (
	dashboardCacheKey = "admin:dashboard" // Dashboard counts and recent orders
	dashboardCacheTTL = 60 * time.Second  // Short TTL, orders arrive continuously
)

// DashboardSummary holds the back-office landing page numbers
type DashboardSummary struct {
	TotalProducts int64          `json:"total_products"` // Count of products
	TotalOrders   int64          `json:"total_orders"`   // Count of orders
	TotalUsers    int64          `json:"total_users"`    // Count of customer accounts
	PendingOrders int64          `json:"pending_orders"` // Count of orders still pending
	RecentOrders  []domain.Order `json:"recent_orders"`  // The 10 most recent orders
}

// DashboardHandler returns store-wide counts and the most recent orders
func DashboardHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context() // Request context for Redis
		// Try to get cached summary
		var cached DashboardSummary
		found, err := utils.GetCache(ctx, rdb, dashboardCacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"summary": cached, "cached": true}) // Serve from cache
			return
		}
		var summary DashboardSummary // Build the summary from the store
		// Count products
		if err := db.Model(&domain.Product{}).Count(&summary.TotalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"}) // Return on error
			return
		}
		// Count orders
		if err := db.Model(&domain.Order{}).Count(&summary.TotalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"}) // Return on error
			return
		}
		// Count customer accounts, admins excluded
		if err := db.Model(&domain.User{}).Where("role = ?", "customer").Count(&summary.TotalUsers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"}) // Return on error
			return
		}
		// Count pending orders
		if err := db.Model(&domain.Order{}).Where("status = ?", "pending").Count(&summary.PendingOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"}) // Return on error
			return
		}
		// Fetch the 10 most recent orders
		if err := db.Order("order_date desc").Limit(10).Find(&summary.RecentOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"}) // Return on error
			return
		}
		// Cache the summary for future requests
		_ = utils.SetCache(ctx, rdb, dashboardCacheKey, summary, dashboardCacheTTL)
		c.JSON(http.StatusOK, gin.H{"summary": summary, "cached": false}) // Return the response
	}
}

// AdminListProductsHandler returns products for management, newest first
func AdminListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&domain.Product{}) // Start building the query
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category) // Exact category match
		}
		var products []domain.Product // Slice to hold products
		// Fetch products, newest first
		if err := query.Order("created_at desc").Find(&products).Error; err != nil {
			// If the query fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		// Return the products
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// Request struct for adding or editing a product
type ProductRequest struct {
	Name        string  `json:"name" form:"name" binding:"required"`         // Name must be provided
	Category    string  `json:"category" form:"category" binding:"required"` // Category must be provided
	Price       float64 `json:"price" form:"price" binding:"required"`       // Price must be provided
	Description string  `json:"description" form:"description"`              // Optional description
	Stock       *int    `json:"stock" form:"stock"`                          // Optional stock, defaults to 100
	Image       string  `json:"image" form:"image"`                          // Optional image reference
}

// AddProductHandler creates a new product
func AddProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest // Bind request to struct
		if err := c.ShouldBind(&req); err != nil {
			// If required fields are missing, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields"})
			return
		}
		// Validate the category
		if !domain.ValidCategory(req.Category) {
			// If unknown, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		// Validate the price
		if req.Price < 0 {
			// If negative, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
			return
		}
		stock := 100 // Stock defaults to 100
		if req.Stock != nil {
			// Negative stock is rejected
			if *req.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must be non-negative"})
				return
			}
			stock = *req.Stock // Use the provided stock
		}
		// Build the product
		product := domain.Product{
			Name:        req.Name,        // Product name
			Category:    req.Category,    // Product category
			Price:       req.Price,       // Current price
			Description: req.Description, // Optional description
			Stock:       stock,           // Stock count
			Image:       req.Image,       // Optional image reference
		}
		// Attempt to create the product in the database
		if err := db.Create(&product).Error; err != nil {
			// If creation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding product"})
			return
		}
		// Invalidate the featured products cache, the catalog changed
		_ = utils.DeleteCache(c.Request.Context(), rdb, featuredCacheKey)
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully!", "product": product})
	}
}

// GetProductForEditHandler returns a product for the edit form
func GetProductForEditHandler(db *gorm.DB) gin.HandlerFunc {
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

// EditProductHandler updates an existing product
func EditProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
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
		var req ProductRequest // Bind request to struct
		if err := c.ShouldBind(&req); err != nil {
			// If required fields are missing, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields"})
			return
		}
		// Validate the category
		if !domain.ValidCategory(req.Category) {
			// If unknown, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		// Validate the price
		if req.Price < 0 {
			// If negative, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
			return
		}
		product.Name = req.Name               // Update name
		product.Category = req.Category       // Update category
		product.Price = req.Price             // Update price
		product.Description = req.Description // Update description
		if req.Stock != nil && *req.Stock >= 0 {
			product.Stock = *req.Stock // Update stock when provided
		}
		// An empty image keeps the existing reference
		if req.Image != "" {
			product.Image = req.Image // Update image reference
		}
		// Save the changes
		if err := db.Save(&product).Error; err != nil {
			// If the update fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating product"})
			return
		}
		// Invalidate the featured products cache, the catalog changed
		_ = utils.DeleteCache(c.Request.Context(), rdb, featuredCacheKey)
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully!", "product": product})
	}
}

// DeleteProductHandler removes a product and its cart lines atomically
func DeleteProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
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
		// Cascade to cart lines in application code; order items keep their snapshot
		err = db.Transaction(func(tx *gorm.DB) error {
			// Delete cart lines referencing the product
			if err := tx.Where("product_id = ?", product.ID).Delete(&domain.CartItem{}).Error; err != nil {
				return err // Return error to rollback
			}
			// Delete the product itself
			if err := tx.Delete(&product).Error; err != nil {
				return err // Return error to rollback
			}
			return nil // Commit transaction
		})
		// Handle transaction result
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"product_id": product.ID,  // Product being deleted
				"error":      err.Error(), // Error message
			}).Error("Product deletion failed") // Log deletion failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting product"})
			return
		}
		// Invalidate the featured products cache, the catalog changed
		_ = utils.DeleteCache(c.Request.Context(), rdb, featuredCacheKey)
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully!"})
	}
}

// UploadProductImageHandler stores an uploaded product image and returns its reference
func UploadProductImageHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image") // Get the uploaded file
		if err != nil {
			// If missing, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}
		// Enforce the upload size cap
		if file.Size > cfg.MaxUploadMB<<20 {
			// If too large, return request entity too large
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image exceeds the upload size limit"})
			return
		}
		// Enforce the extension allowlist
		if !utils.ImageExtAllowed(file.Filename, cfg.AllowedImageExt) {
			// If not allowed, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image type not allowed"})
			return
		}
		var ref string // Stored image reference
		if cfg.S3Bucket != "" {
			ref, err = utils.UploadImageS3(c.Request.Context(), file, cfg.S3Bucket) // Upload to S3 when configured
		} else {
			ref, err = utils.SaveImageLocal(file, cfg.UploadDir) // Otherwise store on local disk
		}
		// Handle storage result
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"filename": file.Filename, // Original filename
				"error":    err.Error(),   // Error message
			}).Error("Image upload failed") // Log upload failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		// Return the reference for the product image field
		c.JSON(http.StatusCreated, gin.H{"message": "Image uploaded successfully!", "image": ref})
	}
}

// AdminListOrdersHandler returns orders for management, newest first
func AdminListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items") // Start building the query
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status) // Exact status match
		}
		var orders []domain.Order // Slice to hold orders
		// Fetch orders, newest first
		if err := query.Order("order_date desc").Find(&orders).Error; err != nil {
			// If the query fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		// Return the orders
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// AdminGetOrderHandler returns any order with its items
func AdminGetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("id")) // Parse the order ID
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		var order domain.Order // Fetch the order with its items
		if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		// Return the order
		c.JSON(http.StatusOK, order)
	}
}

// Request struct for updating an order's status
type UpdateOrderStatusRequest struct {
	OrderID uint   `json:"order_id" form:"order_id" binding:"required"` // Order must be provided
	Status  string `json:"status" form:"status" binding:"required"`     // New status, any string is accepted
}

// UpdateOrderStatusHandler sets an order's status
func UpdateOrderStatusHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest // Bind request to struct
		if err := c.ShouldBind(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var order domain.Order // Fetch the order
		if err := db.First(&order, req.OrderID).Error; err != nil {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		// Update only the status field; the rest of the order is immutable
		if err := db.Model(&order).Update("status", req.Status).Error; err != nil {
			// If the update fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating order status"})
			return
		}
		// Log the status change
		logrus.WithFields(logrus.Fields{
			"order_id": order.ID,   // Order changed
			"status":   req.Status, // New status
		}).Info("Order status updated") // Log status update
		// Invalidate the admin dashboard cache, pending counts may have changed
		_ = utils.DeleteCache(c.Request.Context(), rdb, dashboardCacheKey)
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated!"})
	}
}
