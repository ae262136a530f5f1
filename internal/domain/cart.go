package domain

import "time" // Timestamps

// CartItem Model
type CartItem struct {
	ID        uint      `gorm:"primaryKey"`                                 // Primary key
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product"` // Foreign key to the owning User
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product"` // Foreign key to the chosen Product
	Quantity  int       `gorm:"not null;default:1"`                         // Chosen quantity, always positive
	CreatedAt time.Time // Timestamp of creation
	Product   Product   // Product the line refers to, for price and display
}
