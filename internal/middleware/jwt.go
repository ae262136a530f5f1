package middleware

import (
	"net/http"                    // HTTP status codes
	"store_system/internal/utils" // JWT utility functions
	"strings"                     // String manipulation

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client for the revocation list
)

// JWTAuthMiddleware validates JWT tokens and extracts user information.
// Revoked tokens (logged-out sessions) are rejected via the Redis blocklist.
func JWTAuthMiddleware(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		// Reject tokens revoked by logout
		if utils.TokenBlocked(c.Request.Context(), rdb, claims.ID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has been logged out"})
			return
		}
		c.Set("userID", claims.UserID) // Store userID in context, resolved once per request
		c.Set("tokenID", claims.ID)    // Store token ID for logout revocation
		// Store token expiry so logout can bound the blocklist TTL
		if claims.ExpiresAt != nil {
			c.Set("tokenExp", claims.ExpiresAt.Time)
		}
		c.Next() // Proceed to the next handler
	}
}
