package services

import (
	"errors"

	"backend/config"
	"backend/models"
)

type CategoryService struct{}

func NewCategoryService() *CategoryService { return &CategoryService{} }

func (s *CategoryService) List(restaurantID uint, categoryType string) ([]models.Category, error) {
	var cats []models.Category
	q := config.DB.Where("restaurant_id = ?", restaurantID)
	if categoryType != "" {
		q = q.Where("type = ?", categoryType)
	}
	err := q.Order("display_order ASC, name ASC").Find(&cats).Error
	return cats, err
}

func (s *CategoryService) Create(restaurantID uint, name, categoryType string, displayOrder int) (*models.Category, error) {
	if categoryType == "" {
		categoryType = models.CategoryTypeMenuItem
	}
	cat := models.Category{
		RestaurantID: restaurantID,
		Name:         name,
		Type:         categoryType,
		DisplayOrder: displayOrder,
	}
	if err := config.DB.Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *CategoryService) Update(restaurantID, categoryID uint, name string, displayOrder int) (*models.Category, error) {
	var cat models.Category
	if err := config.DB.
		Where("id = ? AND restaurant_id = ?", categoryID, restaurantID).
		First(&cat).Error; err != nil {
		return nil, err
	}
	cat.Name = name
	cat.DisplayOrder = displayOrder
	if err := config.DB.Save(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// Delete refuses while the category is still bound to a digital menu or referenced
// by ingredients, recipes or expenses.
func (s *CategoryService) Delete(restaurantID, categoryID uint) error {
	var cat models.Category
	if err := config.DB.
		Where("id = ? AND restaurant_id = ?", categoryID, restaurantID).
		First(&cat).Error; err != nil {
		return err
	}

	var bindings int64
	config.DB.Model(&models.DigitalMenuCategory{}).Where("category_id = ?", categoryID).Count(&bindings)
	if bindings > 0 {
		return errors.New("category is used by a digital menu")
	}

	var refs int64
	config.DB.Model(&models.Ingredient{}).Where("category_id = ?", categoryID).Count(&refs)
	if refs > 0 {
		return errors.New("category is used by ingredients")
	}
	config.DB.Model(&models.Recipe{}).Where("category_id = ?", categoryID).Count(&refs)
	if refs > 0 {
		return errors.New("category is used by recipes")
	}
	config.DB.Model(&models.Expense{}).Where("category_id = ?", categoryID).Count(&refs)
	if refs > 0 {
		return errors.New("category is used by expenses")
	}

	return config.DB.Delete(&cat).Error
}
