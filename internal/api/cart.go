package api

import (
	"net/http"                     // HTTP status codes
	"store_system/internal/domain" // Importing domain models
	"strconv"                      // String conversion

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// currentUserID returns the request's authenticated user ID from the context
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID") // Set by the JWT middleware
	if !exists {
		return 0, false // No authenticated identity
	}
	id, ok := v.(uint) // The middleware stores a uint
	return id, ok
}

// Request struct for adding a product to the cart
type AddToCartRequest struct {
	ProductID uint `json:"product_id" form:"product_id" binding:"required"` // Product must be provided
	Quantity  int  `json:"quantity" form:"quantity"`                        // Quantity, defaults to 1
}

// Request struct for updating a cart line quantity
type UpdateCartRequest struct {
	CartID   uint `json:"cart_id" form:"cart_id" binding:"required"` // Cart line must be provided
	Quantity int  `json:"quantity" form:"quantity"`                  // New quantity, zero or below deletes the line
}

// AddToCartHandler adds a product to the user's cart, incrementing an existing line
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			// If missing, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req AddToCartRequest // Bind request to struct
		if err := c.ShouldBind(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Quantity defaults to 1 when omitted
		if req.Quantity <= 0 {
			req.Quantity = 1
		}
		var product domain.Product // Verify the product exists
		if err := db.First(&product, req.ProductID).Error; err != nil {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		var line domain.CartItem // Check if the user already has a line for this product
		err := db.Where("user_id = ? AND product_id = ?", userID, req.ProductID).First(&line).Error
		if err == nil {
			// Existing line: increment, never overwrite
			if err := db.Model(&line).Update("quantity", gorm.Expr("quantity + ?", req.Quantity)).Error; err != nil {
				// If the update fails, return internal server error
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
				return
			}
			// Return success response
			c.JSON(http.StatusOK, gin.H{"message": product.Name + " added to cart!", "cart_id": line.ID})
			return
		}
		// No existing line: insert a new one
		line = domain.CartItem{UserID: userID, ProductID: req.ProductID, Quantity: req.Quantity}
		if err := db.Create(&line).Error; err != nil {
			// If creation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": product.Name + " added to cart!", "cart_id": line.ID})
	}
}

// ViewCartHandler returns the user's cart lines and the running total
func ViewCartHandler(db *gorm.DB) gin.HandlerFunc {
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
		// Total is recomputed from current prices, not a stored snapshot
		var total float64
		for _, item := range items {
			total += item.Product.Price * float64(item.Quantity) // Line subtotal
		}
		// Return the cart and its total
		c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
	}
}

// UpdateCartHandler sets a cart line quantity; zero or below removes the line
func UpdateCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			// If missing, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req UpdateCartRequest // Bind request to struct
		if err := c.ShouldBind(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var line domain.CartItem // Fetch the cart line
		if err := db.First(&line, req.CartID).Error; err != nil {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		// Ownership check before mutating
		if line.UserID != userID {
			// If owned by someone else, return forbidden
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access"})
			return
		}
		// Zero or negative quantity deletes the line
		if req.Quantity <= 0 {
			if err := db.Delete(&line).Error; err != nil {
				// If the delete fails, return internal server error
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
				return
			}
			// Return success response
			c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
			return
		}
		// Otherwise set the new quantity
		if err := db.Model(&line).Update("quantity", req.Quantity).Error; err != nil {
			// If the update fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated!"})
	}
}

// RemoveFromCartHandler deletes a cart line after an ownership check
func RemoveFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			// If missing, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		cartID, err := strconv.Atoi(c.Param("id")) // Parse the cart line ID
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}
		var line domain.CartItem // Fetch the cart line
		if err := db.First(&line, cartID).Error; err != nil {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		// Ownership check before deleting
		if line.UserID != userID {
			// If owned by someone else, return forbidden
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access"})
			return
		}
		// Delete the line
		if err := db.Delete(&line).Error; err != nil {
			// If the delete fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}
