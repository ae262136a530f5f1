package domain

import "time" // Timestamps

// User Model
type User struct {
	ID        uint       `gorm:"primaryKey"`                        // Primary key
	Name      string     `gorm:"size:100;not null"`                 // Display name
	Email     string     `gorm:"size:100;unique;not null"`          // Unique email, used for login
	Password  string     `gorm:"size:255;not null"`                 // Hashed password
	Role      string     `gorm:"size:20;not null;default:customer"` // Role: customer or admin
	CreatedAt time.Time  // Timestamp of creation
	CartItems []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"` // One-to-many relationship with CartItem
	Orders    []Order    // One-to-many relationship with Order
}
