package main

import (
	"store_system/internal/config" // Custom import path (Config)
	"store_system/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Database Source Name (DSN) for MySQL connection
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db.Migrate(dsn)                                   // Create the schema
	db.SeedAdmin(dsn, cfg.AdminEmail, cfg.AdminPassword) // Seed the back-office admin if configured
}
