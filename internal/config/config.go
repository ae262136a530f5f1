package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting list values

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string   // Application port
	DBUser          string   // Database user
	DBPassword      string   // Database password
	DBHost          string   // Database host
	DBPort          string   // Database port
	DBName          string   // Database name
	JWTSecret       string   // JWT secret key
	RedisAddr       string   // Redis server address
	RedisPass       string   // Redis password
	RedisDB         int      // Redis database number
	IsProd          bool     // Is production environment
	UploadDir       string   // Directory for uploaded product images
	MaxUploadMB     int64    // Upload size cap in megabytes
	AllowedImageExt []string // Allowed image file extensions
	S3Bucket        string   // S3 bucket for product images; empty means local storage
	FeaturedLimit   int      // Products shown per category on the landing page
	AdminEmail      string   // Seed admin email for migration
	AdminPassword   string   // Seed admin password for migration
}

// getEnv returns the environment variable value or a default when unset
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v // Use the environment override
	}
	return def // Fall back to the default
}

// getEnvInt returns the environment variable parsed as int or a default
func getEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v // Use the parsed override
	}
	return def // Fall back to the default
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:         getEnv("APP_PORT", "8080"),                                 // Application port
		DBUser:          getEnv("DB_USER", "ecommerce_db"),                          // Database user
		DBPassword:      getEnv("DB_PASSWORD", "admin"),                             // Database password
		DBHost:          getEnv("DB_HOST", "localhost"),                             // Database host
		DBPort:          getEnv("DB_PORT", "3306"),                                  // Database port
		DBName:          getEnv("DB_NAME", "ecommerce_db"),                          // Database name
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-key-change-in-production"), // JWT secret key
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),                     // Redis server address
		RedisPass:       os.Getenv("REDIS_PASS"),                                    // Redis password
		RedisDB:         getEnvInt("REDIS_DB", 0),                                   // Redis database number
		IsProd:          os.Getenv("IS_PROD") == "true",                             // Is production environment
		UploadDir:       getEnv("UPLOAD_DIR", "static/uploads"),                     // Upload directory
		MaxUploadMB:     int64(getEnvInt("MAX_UPLOAD_MB", 16)),                      // Upload size cap, 16MB default
		AllowedImageExt: strings.Split(getEnv("ALLOWED_IMAGE_EXT", "png,jpg,jpeg,gif"), ","), // Allowed extensions
		S3Bucket:        os.Getenv("S3_BUCKET"),                                     // Optional S3 bucket
		FeaturedLimit:   getEnvInt("FEATURED_LIMIT", 4),                             // Featured products per category
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),                                   // Seed admin email
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),                                // Seed admin password
	}
}
