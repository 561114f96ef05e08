package models

import "gorm.io/gorm"

// Category types discriminate what a global category is used for.
const (
    CategoryTypeRecipe     = "recipe"
    CategoryTypeIngredient = "ingredient"
    CategoryTypeExpense    = "expense"
    CategoryTypeMenuItem   = "menu_item"
)

// A restaurant-wide category, reusable across digital menus.
type Category struct {
    gorm.Model
    RestaurantID uint   `gorm:"index;not null"`
    Name         string `gorm:"not null"`
    Type         string `gorm:"type:varchar(32);not null;default:'menu_item'"`
    DisplayOrder int
}
