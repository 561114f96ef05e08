package services

import (
	"errors"
	"strings"

	"backend/config"
	"backend/models"
)

type TemplateService struct{}

func NewTemplateService() *TemplateService { return &TemplateService{} }

type TemplateCategoryInput struct {
	Name         string              `json:"name" binding:"required"`
	DisplayOrder int                 `json:"display_order"`
	Items        []TemplateItemInput `json:"items"`
}

type TemplateItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

type TemplateInput struct {
	Name        string                  `json:"name" binding:"required"`
	Description string                  `json:"description"`
	Config      models.TemplateConfig   `json:"config"`
	Categories  []TemplateCategoryInput `json:"categories"`
}

func (s *TemplateService) List(restaurantID uint) ([]models.MenuTemplate, error) {
	var tpls []models.MenuTemplate
	err := config.DB.
		Where("restaurant_id = ?", restaurantID).
		Order("is_default DESC, created_at DESC").
		Find(&tpls).Error
	return tpls, err
}

func (s *TemplateService) Get(restaurantID, templateID uint) (*models.MenuTemplate, error) {
	var tpl models.MenuTemplate
	err := config.DB.
		Preload("Categories.Items").
		Where("id = ? AND restaurant_id = ?", templateID, restaurantID).
		First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (s *TemplateService) Create(restaurantID uint, in TemplateInput) (*models.MenuTemplate, error) {
	tpl := models.MenuTemplate{
		RestaurantID: restaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Config:       in.Config,
	}
	if err := config.DB.Create(&tpl).Error; err != nil {
		return nil, err
	}
	if err := s.replaceSnapshot(&tpl, in.Categories); err != nil {
		return nil, err
	}
	return s.Get(restaurantID, tpl.ID)
}

func (s *TemplateService) Update(restaurantID, templateID uint, in TemplateInput) (*models.MenuTemplate, error) {
	tpl, err := s.Get(restaurantID, templateID)
	if err != nil {
		return nil, err
	}
	tpl.Name = in.Name
	tpl.Description = in.Description
	tpl.Config = in.Config
	if err := config.DB.Save(tpl).Error; err != nil {
		return nil, err
	}
	if in.Categories != nil {
		if err := s.replaceSnapshot(tpl, in.Categories); err != nil {
			return nil, err
		}
	}
	return s.Get(restaurantID, templateID)
}

// Delete refuses for the default template; it is the fallback every menu can
// always be reset to.
func (s *TemplateService) Delete(restaurantID, templateID uint) error {
	tpl, err := s.Get(restaurantID, templateID)
	if err != nil {
		return err
	}
	if tpl.IsDefault {
		return errors.New("default template cannot be deleted")
	}
	for _, tc := range tpl.Categories {
		if err := config.DB.Where("template_category_id = ?", tc.ID).
			Delete(&models.TemplateItem{}).Error; err != nil {
			return err
		}
	}
	if err := config.DB.Where("menu_template_id = ?", tpl.ID).
		Delete(&models.TemplateCategory{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&models.MenuTemplate{}, tpl.ID).Error
}

func (s *TemplateService) SetDefault(restaurantID, templateID uint) error {
	if _, err := s.Get(restaurantID, templateID); err != nil {
		return err
	}
	if err := config.DB.Model(&models.MenuTemplate{}).
		Where("restaurant_id = ?", restaurantID).
		Update("is_default", false).Error; err != nil {
		return err
	}
	return config.DB.Model(&models.MenuTemplate{}).
		Where("id = ?", templateID).
		Update("is_default", true).Error
}

func (s *TemplateService) replaceSnapshot(tpl *models.MenuTemplate, cats []TemplateCategoryInput) error {
	var existing []models.TemplateCategory
	if err := config.DB.Where("menu_template_id = ?", tpl.ID).Find(&existing).Error; err != nil {
		return err
	}
	for _, tc := range existing {
		if err := config.DB.Where("template_category_id = ?", tc.ID).
			Delete(&models.TemplateItem{}).Error; err != nil {
			return err
		}
	}
	if err := config.DB.Where("menu_template_id = ?", tpl.ID).
		Delete(&models.TemplateCategory{}).Error; err != nil {
		return err
	}

	for _, in := range cats {
		tc := models.TemplateCategory{
			MenuTemplateID: tpl.ID,
			Name:           in.Name,
			DisplayOrder:   in.DisplayOrder,
		}
		if err := config.DB.Create(&tc).Error; err != nil {
			return err
		}
		for _, it := range in.Items {
			item := models.TemplateItem{
				TemplateCategoryID: tc.ID,
				Name:               it.Name,
				Description:        it.Description,
				Price:              it.Price,
				ImageURL:           it.ImageURL,
			}
			if err := config.DB.Create(&item).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// GenerateStyle is the template-generation stub: a deterministic mapping from the
// prompt and brand colors to a config. The real model call lives behind this
// signature when it lands.
func (s *TemplateService) GenerateStyle(prompt, primaryColor, accentColor string) models.TemplateConfig {
	cfg := models.TemplateConfig{
		PrimaryColor: primaryColor,
		AccentColor:  accentColor,
	}
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "elegant"), strings.Contains(p, "fine"):
		cfg.LayoutStyle = "list"
		cfg.CardStyle = "minimal"
		cfg.Spacing = "spacious"
		cfg.FontFamilyPrimary = "Playfair Display"
	case strings.Contains(p, "modern"), strings.Contains(p, "minimal"):
		cfg.LayoutStyle = "grid"
		cfg.CardStyle = "bordered"
		cfg.Spacing = "comfortable"
	case strings.Contains(p, "casual"), strings.Contains(p, "fun"):
		cfg.LayoutStyle = "cards"
		cfg.CardStyle = "elevated"
		cfg.Spacing = "compact"
	}
	return models.ResolveTemplateConfig(cfg)
}
