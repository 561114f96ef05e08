package models

import "gorm.io/gorm"

// A costed dish. Cost is derived from the ingredient lines and recomputed whenever
// the lines or any referenced ingredient change.
type Recipe struct {
    gorm.Model
    RestaurantID uint `gorm:"index;not null"`
    CategoryID   *uint
    Name         string `gorm:"not null"`
    Description  string
    SellingPrice float64
    Cost         float64
    Items        []RecipeIngredient
}

type RecipeIngredient struct {
    gorm.Model
    RecipeID     uint `gorm:"index;not null"`
    IngredientID uint `gorm:"not null"`
    Ingredient   *Ingredient `gorm:"foreignKey:IngredientID"`
    Quantity     float64     // in the ingredient's storage unit
    Unit         string
}
