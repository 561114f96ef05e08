package models

import (
    "time"

    "gorm.io/gorm"
)

type Expense struct {
    gorm.Model
    RestaurantID uint `gorm:"index;not null"`
    CategoryID   *uint
    Description  string
    Amount       float64
    IncurredAt   time.Time
}
