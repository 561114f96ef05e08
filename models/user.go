package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email    string `gorm:"uniqueIndex;not null"`
    Password string `gorm:"not null"`
    FullName string
}

// One restaurant per user; every domain row is scoped by RestaurantID.
type Restaurant struct {
    gorm.Model
    UserID      uint   `gorm:"uniqueIndex;not null"`
    Name        string `gorm:"not null"`
    Description string
    Address     string
    Phone       string
    Currency    string // ISO code, e.g. "USD"
    LogoURL     string
}
