package domain

import "time" // Timestamps

// Order Model
type Order struct {
	ID              uint        `gorm:"primaryKey"`                 // Primary key
	UserID          uint        `gorm:"not null"`                   // Foreign key to the owning User
	TotalAmount     float64     `gorm:"not null"`                   // Total computed at checkout, immutable afterwards
	OrderDate       time.Time   `gorm:"autoCreateTime"`             // Timestamp of checkout
	Status          string      `gorm:"size:50;not null;default:pending"` // Status: pending, confirmed, delivered, cancelled
	PaymentMethod   string      `gorm:"size:50;not null"`           // Payment method tag, e.g. cash_on_delivery
	ShippingAddress string      `gorm:"type:text;not null"`         // Delivery address
	Phone           string      `gorm:"size:20;not null"`           // Contact phone
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"` // One-to-many relationship with OrderItem
}

// OrderItem Model
type OrderItem struct {
	ID        uint    `gorm:"primaryKey"` // Primary key
	OrderID   uint    `gorm:"not null"`   // Foreign key to the owning Order
	ProductID uint    `gorm:"not null"`   // Product reference, tolerated to dangle after product deletion
	Quantity  int     `gorm:"not null"`   // Ordered quantity
	Price     float64 `gorm:"not null"`   // Price snapshot at time of order
}
