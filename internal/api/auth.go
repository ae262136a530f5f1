package api

import (
	"net/http"                     // HTTP status codes
	"store_system/internal/domain" // Importing domain models
	"store_system/internal/utils"  // Utility functions
	"strings"                      // String manipulation
	"time"                         // Blocklist TTL computation

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client for the revocation list
	"golang.org/x/crypto/bcrypt"   // Password hashing
	"gorm.io/gorm"                 // GORM ORM library
)

// Request struct for signup
type SignupRequest struct {
	Name            string `json:"name" form:"name" binding:"required"`                         // Display name must be provided
	Email           string `json:"email" form:"email" binding:"required,email"`                 // Email must be provided and valid
	Password        string `json:"password" form:"password" binding:"required"`                 // Password must be provided
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required"` // Confirmation must be provided
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`       // Email must be provided
	Password string `json:"password" form:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
	Role  string `json:"role"`  // Role, so the client can route to the back-office
}

// isValidPassword checks if the password is at least 6 characters
func isValidPassword(password string) bool {
	return len(password) >= 6 // Minimum length only
}

// SignupHandler registers a new customer account
func SignupHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind request to struct
		if err := c.ShouldBind(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
			return
		}
		// Validate password confirmation
		if req.Password != req.ConfirmPassword {
			// If mismatched, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
			return
		}
		// Validate password length
		if !isValidPassword(req.Password) {
			// If too short, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email)) // Normalize email for the uniqueness check
		var existing domain.User                               // Check if the email is already registered
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			// If found, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		// New signups always get the customer role
		user := domain.User{Name: req.Name, Email: email, Password: string(hash), Role: "customer"}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			// If creation fails (e.g., duplicate email raced past the check), return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Registration successful! Please login."})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind request to struct
		if err := c.ShouldBind(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
			// Same message whether the account exists or not
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token, Role: user.Role})
	}
}

// LogoutHandler revokes the presented token until its natural expiry
func LogoutHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenID := c.GetString("tokenID") // Token ID set by the JWT middleware
		// Determine how long the token would remain valid
		ttl := time.Duration(0)
		if exp, ok := c.Get("tokenExp"); ok {
			if expTime, ok := exp.(time.Time); ok {
				ttl = time.Until(expTime) // Blocklist only for the remaining lifetime
			}
		}
		// Push the token onto the revocation list
		if err := utils.BlockToken(c.Request.Context(), rdb, tokenID, ttl); err != nil {
			// If Redis fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "You have been logged out"})
	}
}
