package domain

import "time" // Timestamps

// Product categories sold by the store
const (
	CategoryFood     = "food"     // Food products
	CategoryFlowers  = "flowers"  // Flower products
	CategoryHeritage = "heritage" // Heritage products
)

// Product Model
type Product struct {
	ID          uint      `gorm:"primaryKey"`        // Primary key
	Name        string    `gorm:"size:200;not null"` // Product name
	Category    string    `gorm:"size:50;not null"`  // Category: food, flowers, heritage
	Price       float64   `gorm:"not null"`          // Current price, non-negative
	Description string    `gorm:"type:text"`         // Optional description
	Image       string    `gorm:"size:255"`          // Optional image reference (URL or path)
	Stock       int       `gorm:"not null;default:100"` // Stock count, non-negative
	CreatedAt   time.Time // Timestamp of creation
}

// ValidCategory reports whether c is one of the store's categories
func ValidCategory(c string) bool {
	return c == CategoryFood || c == CategoryFlowers || c == CategoryHeritage // One of exactly three values
}
