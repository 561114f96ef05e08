package services

import (
	"backend/config"
	"backend/models"
	"backend/utils"
)

type IngredientService struct{}

func NewIngredientService() *IngredientService { return &IngredientService{} }

type IngredientInput struct {
	Name             string  `json:"name" binding:"required"`
	CategoryID       *uint   `json:"category_id"`
	PurchaseUnit     string  `json:"purchase_unit"`
	PurchaseUnitCost float64 `json:"purchase_unit_cost"`
	StorageUnit      string  `json:"storage_unit"`
	ConversionFactor float64 `json:"conversion_factor" binding:"required"`
}

func (s *IngredientService) List(restaurantID uint) ([]models.Ingredient, error) {
	var ings []models.Ingredient
	err := config.DB.
		Where("restaurant_id = ?", restaurantID).
		Order("name ASC").
		Find(&ings).Error
	return ings, err
}

func (s *IngredientService) Get(restaurantID, ingredientID uint) (*models.Ingredient, error) {
	var ing models.Ingredient
	err := config.DB.
		Where("id = ? AND restaurant_id = ?", ingredientID, restaurantID).
		First(&ing).Error
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

// Create rejects a non-positive conversion factor at write time; that keeps Inf
// and negative unit costs out of the aggregation paths entirely.
func (s *IngredientService) Create(restaurantID uint, in IngredientInput) (*models.Ingredient, error) {
	costPerUnit, err := utils.CostPerStorageUnit(in.PurchaseUnitCost, in.ConversionFactor)
	if err != nil {
		return nil, err
	}
	ing := models.Ingredient{
		RestaurantID:     restaurantID,
		CategoryID:       in.CategoryID,
		Name:             in.Name,
		PurchaseUnit:     in.PurchaseUnit,
		PurchaseUnitCost: in.PurchaseUnitCost,
		StorageUnit:      in.StorageUnit,
		ConversionFactor: in.ConversionFactor,
		CostPerUnit:      costPerUnit,
	}
	if err := config.DB.Create(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// Update recomputes the derived unit cost and refreshes the cost of every recipe
// that uses this ingredient, so stored recipe costs stay consistent with their
// inputs.
func (s *IngredientService) Update(restaurantID, ingredientID uint, in IngredientInput) (*models.Ingredient, error) {
	ing, err := s.Get(restaurantID, ingredientID)
	if err != nil {
		return nil, err
	}
	costPerUnit, err := utils.CostPerStorageUnit(in.PurchaseUnitCost, in.ConversionFactor)
	if err != nil {
		return nil, err
	}

	ing.Name = in.Name
	ing.CategoryID = in.CategoryID
	ing.PurchaseUnit = in.PurchaseUnit
	ing.PurchaseUnitCost = in.PurchaseUnitCost
	ing.StorageUnit = in.StorageUnit
	ing.ConversionFactor = in.ConversionFactor
	ing.CostPerUnit = costPerUnit

	if err := config.DB.Save(ing).Error; err != nil {
		return nil, err
	}
	if err := recomputeRecipesUsing(ing.ID); err != nil {
		return nil, err
	}
	return ing, nil
}

func (s *IngredientService) Delete(restaurantID, ingredientID uint) error {
	ing, err := s.Get(restaurantID, ingredientID)
	if err != nil {
		return err
	}
	var count int64
	config.DB.Model(&models.RecipeIngredient{}).
		Where("ingredient_id = ?", ing.ID).
		Count(&count)
	if count > 0 {
		return ErrIngredientInUse
	}
	return config.DB.Delete(ing).Error
}
