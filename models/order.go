package models

import "gorm.io/gorm"

const (
    OrderStatusOpen      = "open"
    OrderStatusPaid      = "paid"
    OrderStatusCancelled = "cancelled"
)

// A point-of-sale ticket. Each line snapshots the item name and price at order time
// so later menu edits don't rewrite history.
type Order struct {
    gorm.Model
    RestaurantID uint   `gorm:"index;not null"`
    Status       string `gorm:"type:varchar(16);not null;default:'open'"`
    TableLabel   string
    Notes        string
    Total        float64
    Items        []OrderItem
}

type OrderItem struct {
    gorm.Model
    OrderID    uint `gorm:"index;not null"`
    MenuItemID uint
    Name       string `gorm:"not null"`
    Price      float64
    Quantity   int `gorm:"not null;default:1"`
}
