package models

import "gorm.io/gorm"

const (
    MenuStatusDraft    = "draft"
    MenuStatusActive   = "active"
    MenuStatusArchived = "archived"
)

// A published, customer-facing menu instance.
type DigitalMenu struct {
    gorm.Model
    RestaurantID uint   `gorm:"index;not null"`
    Name         string `gorm:"not null"`
    Slug         string `gorm:"uniqueIndex"` // public URL segment, assigned on publish
    Status       string `gorm:"type:varchar(16);not null;default:'draft'"`
    TemplateID   *uint
    QRCodeURL    string
    Categories   []DigitalMenuCategory
}

// Binds a global Category to one DigitalMenu with a menu-specific order.
// The (digital_menu_id, category_id) pair is unique.
type DigitalMenuCategory struct {
    gorm.Model
    DigitalMenuID uint `gorm:"uniqueIndex:idx_menu_category;not null"`
    CategoryID    uint `gorm:"uniqueIndex:idx_menu_category;not null"`
    DisplayOrder  int
    Items         []MenuItem
}

type MenuItem struct {
    gorm.Model
    DigitalMenuCategoryID uint    `gorm:"index;not null"`
    Name                  string  `gorm:"not null"`
    Description           string
    Price                 float64 `gorm:"not null;default:0"` // non-negative
    ImageURL              string
}
