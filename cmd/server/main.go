package main

import (
	"context"                          // context package is needed for Redis operations
	"log"                              // log package is needed for logging
	"store_system/internal/api"        // Custom package for API handlers
	"store_system/internal/config"     // Custom package for configuration
	"store_system/internal/middleware" // Custom package for middleware
	"time"                             // CORS preflight cache duration

	// For loading .env files
	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Allow browser storefronts to call the API
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200"}, // Storefront origin
		AllowMethods:     []string{"GET", "POST"},           // Methods used by the route surface
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve locally stored product images
	r.Static("/static/uploads", cfg.UploadDir)

	// Auth routes
	r.POST("/signup", api.SignupHandler(db))               // Registration endpoint
	r.POST("/login", api.LoginHandler(db, cfg.JWTSecret))  // Login endpoint

	// Catalog routes (public)
	r.GET("/", api.HomeHandler(db, redisClient, cfg.FeaturedLimit)) // Landing page with featured products
	r.GET("/products", api.ListProductsHandler(db))                 // Product listing with filters
	r.GET("/product/:id", api.GetProductHandler(db))                // Product detail endpoint

	// Customer routes (protected by JWT)
	userGroup := r.Group("")
	// Protect customer routes with JWT middleware
	userGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret, redisClient))
	userGroup.GET("/logout", api.LogoutHandler(redisClient))              // Logout endpoint
	userGroup.POST("/add-to-cart", api.AddToCartHandler(db))              // Add to cart endpoint
	userGroup.GET("/cart", api.ViewCartHandler(db))                       // View cart endpoint
	userGroup.POST("/update-cart", api.UpdateCartHandler(db))             // Update cart quantity endpoint
	userGroup.GET("/remove-from-cart/:id", api.RemoveFromCartHandler(db)) // Remove cart line endpoint
	userGroup.GET("/checkout", api.CheckoutPreviewHandler(db))            // Checkout review endpoint
	userGroup.POST("/checkout", api.CheckoutHandler(db, redisClient))     // Checkout endpoint
	userGroup.GET("/order-confirmation/:id", api.OrderConfirmationHandler(db)) // Order confirmation endpoint
	userGroup.GET("/my-orders", api.MyOrdersHandler(db))                  // Order history endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	// Protect admin routes with JWT and AdminOnly middleware
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret, redisClient), middleware.AdminOnlyMiddleware(db))
	adminGroup.GET("/dashboard", api.DashboardHandler(db, redisClient))              // Dashboard summary endpoint
	adminGroup.GET("/products", api.AdminListProductsHandler(db))                    // Product management listing
	adminGroup.POST("/product/add", api.AddProductHandler(db, redisClient))          // Add product endpoint
	adminGroup.GET("/product/edit/:id", api.GetProductForEditHandler(db))            // Edit form data endpoint
	adminGroup.POST("/product/edit/:id", api.EditProductHandler(db, redisClient))    // Edit product endpoint
	adminGroup.GET("/product/delete/:id", api.DeleteProductHandler(db, redisClient)) // Delete product endpoint
	adminGroup.POST("/product/upload-image", api.UploadProductImageHandler(cfg))     // Product image upload endpoint
	adminGroup.GET("/orders", api.AdminListOrdersHandler(db))                        // Order management listing
	adminGroup.GET("/order/:id", api.AdminGetOrderHandler(db))                       // Order detail endpoint
	adminGroup.POST("/order/update-status", api.UpdateOrderStatusHandler(db, redisClient)) // Order status endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
