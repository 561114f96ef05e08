package models

import "gorm.io/gorm"

// An ingredient bought in one unit and consumed in another.
// CostPerUnit is derived: PurchaseUnitCost / ConversionFactor. It is recomputed on
// every write, never edited directly.
type Ingredient struct {
    gorm.Model
    RestaurantID     uint   `gorm:"index;not null"`
    CategoryID       *uint
    Name             string `gorm:"not null"`
    PurchaseUnit     string // e.g. "kg"
    PurchaseUnitCost float64
    StorageUnit      string // e.g. "g"
    ConversionFactor float64 `gorm:"not null"` // purchase -> storage, must be > 0
    CostPerUnit      float64 // cost per storage unit
}
