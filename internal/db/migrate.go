package db

import (
	"store_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library

	"golang.org/x/crypto/bcrypt" // Password hashing for the admin seed
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.CartItem{}, &domain.Order{}, &domain.OrderItem{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// SeedAdmin ensures an admin user exists for the given credentials.
// A back-office needs at least one admin account; signup only creates customers.
func SeedAdmin(dsn, email, password string) {
	// Nothing to seed without credentials
	if email == "" || password == "" {
		return
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	var existing domain.User // Check whether the admin already exists
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		logrus.Info("Admin user already present, skipping seed.") // Already seeded
		return
	}
	// Hash the seed password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash admin password: %v", err) // Log fatal error if hashing fails
	}
	// Create the admin user
	admin := domain.User{Name: "Administrator", Email: email, Password: string(hash), Role: "admin"}
	if err := db.Create(&admin).Error; err != nil {
		logrus.Fatalf("failed to seed admin user: %v", err) // Log fatal error if creation fails
	}
	logrus.Info("Admin user seeded.") // Log successful seed
}
