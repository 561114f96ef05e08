package models

import "gorm.io/gorm"

// The full set of visual style parameters governing a digital menu's rendering.
// String fields left empty and nil bool pointers mean "unset"; ResolveTemplateConfig
// fills those from the defaults. Stored booleans keep their value through the merge,
// so show_prices=false survives resolution.
type TemplateConfig struct {
    PrimaryColor        string `json:"primary_color"`
    SecondaryColor      string `json:"secondary_color"`
    AccentColor         string `json:"accent_color"`
    BackgroundColor     string `json:"background_color"`
    BorderRadius        string `json:"border_radius"`
    FontFamilyPrimary   string `json:"font_family_primary"`
    FontFamilySecondary string `json:"font_family_secondary"`
    LayoutStyle         string `json:"layout_style"` // list | grid | cards
    CardStyle           string `json:"card_style"`   // minimal | elevated | bordered
    Spacing             string `json:"spacing"`      // compact | comfortable | spacious
    ShowImages          *bool  `json:"show_images"`
    ShowDescriptions    *bool  `json:"show_descriptions"`
    ShowPrices          *bool  `json:"show_prices"`
    HeaderStyle         string `json:"header_style"`
    FooterStyle         string `json:"footer_style"`
}

// DefaultTemplateConfig returns the canonical default set. The source app carried a
// second amber palette on the editor screen; we keep the live-menu palette everywhere.
func DefaultTemplateConfig() TemplateConfig {
    t := true
    return TemplateConfig{
        PrimaryColor:        "#1F2937",
        SecondaryColor:      "#F9FAFB",
        AccentColor:         "#D97706",
        BackgroundColor:     "#FFFFFF",
        BorderRadius:        "8px",
        FontFamilyPrimary:   "Inter",
        FontFamilySecondary: "Lora",
        LayoutStyle:         "list",
        CardStyle:           "elevated",
        Spacing:             "comfortable",
        ShowImages:          &t,
        ShowDescriptions:    &t,
        ShowPrices:          &t,
        HeaderStyle:         "centered",
        FooterStyle:         "simple",
    }
}

// ResolveTemplateConfig applies defaults per key: any set field wins, any unset
// field falls back. No validation of colors, fonts or enum values happens here;
// whatever the user stored passes through to the renderer.
func ResolveTemplateConfig(c TemplateConfig) TemplateConfig {
    d := DefaultTemplateConfig()
    if c.PrimaryColor == "" {
        c.PrimaryColor = d.PrimaryColor
    }
    if c.SecondaryColor == "" {
        c.SecondaryColor = d.SecondaryColor
    }
    if c.AccentColor == "" {
        c.AccentColor = d.AccentColor
    }
    if c.BackgroundColor == "" {
        c.BackgroundColor = d.BackgroundColor
    }
    if c.BorderRadius == "" {
        c.BorderRadius = d.BorderRadius
    }
    if c.FontFamilyPrimary == "" {
        c.FontFamilyPrimary = d.FontFamilyPrimary
    }
    if c.FontFamilySecondary == "" {
        c.FontFamilySecondary = d.FontFamilySecondary
    }
    if c.LayoutStyle == "" {
        c.LayoutStyle = d.LayoutStyle
    }
    if c.CardStyle == "" {
        c.CardStyle = d.CardStyle
    }
    if c.Spacing == "" {
        c.Spacing = d.Spacing
    }
    if c.ShowImages == nil {
        c.ShowImages = d.ShowImages
    }
    if c.ShowDescriptions == nil {
        c.ShowDescriptions = d.ShowDescriptions
    }
    if c.ShowPrices == nil {
        c.ShowPrices = d.ShowPrices
    }
    if c.HeaderStyle == "" {
        c.HeaderStyle = d.HeaderStyle
    }
    if c.FooterStyle == "" {
        c.FooterStyle = d.FooterStyle
    }
    return c
}

// A reusable menu design: style configuration plus a category/item snapshot that
// gets copied onto a digital menu when the template is applied.
type MenuTemplate struct {
    gorm.Model
    RestaurantID uint   `gorm:"index;not null"`
    Name         string `gorm:"not null"`
    Description  string
    IsDefault    bool
    Config       TemplateConfig `gorm:"embedded;embeddedPrefix:config_"`
    Categories   []TemplateCategory
}

type TemplateCategory struct {
    gorm.Model
    MenuTemplateID uint   `gorm:"index;not null"`
    Name           string `gorm:"not null"`
    DisplayOrder   int
    Items          []TemplateItem
}

type TemplateItem struct {
    gorm.Model
    TemplateCategoryID uint   `gorm:"index;not null"`
    Name               string `gorm:"not null"`
    Description        string
    Price              float64
    ImageURL           string
}
