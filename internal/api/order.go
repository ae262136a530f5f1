package api

import (
	"net/http"                     // HTTP status codes
	"store_system/internal/domain" // Importing domain models
	"store_system/internal/utils"  // Utility functions
	"strconv"                      // String conversion

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client for cache invalidation
	"gorm.io/gorm"                 // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for checkout
type CheckoutRequest struct {
	PaymentMethod   string `json:"payment_method" form:"payment_method" binding:"required"`     // Payment method tag must be provided
	ShippingAddress string `json:"shipping_address" form:"shipping_address" binding:"required"` // Shipping address must be provided
	Phone           string `json:"phone" form:"phone" binding:"required"`                       // Phone must be provided
}

// CheckoutPreviewHandler returns the cart contents and total for checkout review
func CheckoutPreviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			// If missing, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var items []domain.CartItem // Fetch cart lines with their products
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			// If the query fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		// An empty cart cannot be checked out
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}
		// Total is recomputed from current prices
		var total float64
		for _, item := range items {
			total += item.Product.Price * float64(item.Quantity) // Line subtotal
		}
		// Return the review data
		c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
	}
}

// CheckoutHandler converts the user's cart into an order atomically
func CheckoutHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			// If missing, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CheckoutRequest // Bind request to struct
		if err := c.ShouldBind(&req); err != nil {
			// If any field is missing, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
			return
		}
		var items []domain.CartItem // Fetch cart lines with current product prices
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			// If the query fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		// An empty cart cannot be checked out
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}
		// Total from current cart contents
		var total float64
		for _, item := range items {
			total += item.Product.Price * float64(item.Quantity) // Line subtotal
		}
		var orderID uint // New order ID for the confirmation response
		// Atomic checkout: order, items, and cart clearing succeed or fail together
		err := db.Transaction(func(tx *gorm.DB) error {
			// Create the order with status pending
			order := domain.Order{
				UserID:          userID,              // Owning user
				TotalAmount:     total,               // Total computed at checkout, immutable afterwards
				Status:          "pending",           // Initial status
				PaymentMethod:   req.PaymentMethod,   // Payment method tag
				ShippingAddress: req.ShippingAddress, // Delivery address
				Phone:           req.Phone,           // Contact phone
			}
			// Save the order
			if err := tx.Create(&order).Error; err != nil {
				return err // Return error to rollback
			}
			// Create one order item per cart line, snapshotting the current price
			for _, item := range items {
				orderItem := domain.OrderItem{
					OrderID:   order.ID,           // Owning order
					ProductID: item.ProductID,     // Product reference
					Quantity:  item.Quantity,      // Ordered quantity
					Price:     item.Product.Price, // Price snapshot at time of order
				}
				// Save the order item
				if err := tx.Create(&orderItem).Error; err != nil {
					return err // Return error to rollback
				}
			}
			// Clear the user's cart
			if err := tx.Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error; err != nil {
				return err // Return error to rollback
			}
			orderID = order.ID // Keep the new order ID for the response
			return nil         // Commit transaction
		})
		// Handle transaction result
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Owning user
				"total":   total,       // Attempted total
				"error":   err.Error(), // Error message
			}).Error("Checkout failed") // Log checkout failure
			// Return internal server error, no partial state remains
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			return
		}
		// Log successful checkout
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,         // Owning user
			"order_id": orderID,        // New order
			"total":    total,          // Order total
			"payment":  req.PaymentMethod, // Payment method tag
		}).Info("Order placed") // Log order placement
		// Invalidate the admin dashboard cache, counts have changed
		_ = utils.DeleteCache(c.Request.Context(), rdb, dashboardCacheKey)
		// Return the new order ID for confirmation display
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully!", "order_id": orderID})
	}
}

// OrderConfirmationHandler returns an order with its items to its owner
func OrderConfirmationHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			// If missing, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
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
		// Ownership check before returning the order
		if order.UserID != userID {
			// If owned by someone else, return forbidden
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access"})
			return
		}
		// Return the order
		c.JSON(http.StatusOK, order)
	}
}

// MyOrdersHandler returns the user's orders, most recent first
func MyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			// If missing, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var orders []domain.Order // Fetch the user's orders with items
		if err := db.Preload("Items").Where("user_id = ?", userID).Order("order_date desc").Find(&orders).Error; err != nil {
			// If the query fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		// Return the order history
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}
