package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"
)

var ErrIngredientInUse = errors.New("ingredient is used by recipes")

type RecipeService struct{}

func NewRecipeService() *RecipeService { return &RecipeService{} }

type RecipeLineInput struct {
	IngredientID uint    `json:"ingredient_id" binding:"required"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

type RecipeInput struct {
	Name         string            `json:"name" binding:"required"`
	Description  string            `json:"description"`
	CategoryID   *uint             `json:"category_id"`
	SellingPrice float64           `json:"selling_price"`
	Items        []RecipeLineInput `json:"items"`
}

// RecipeView adds the derived display fields to a stored recipe.
type RecipeView struct {
	models.Recipe
	Profit           float64 `json:"profit"`
	MarginPercentage float64 `json:"margin_percentage"`
}

func viewOf(r models.Recipe) RecipeView {
	return RecipeView{
		Recipe:           r,
		Profit:           utils.Profit(r.SellingPrice, r.Cost),
		MarginPercentage: utils.RoundCurrency(utils.MarginPercentage(r.SellingPrice, r.Cost)),
	}
}

func (s *RecipeService) List(restaurantID uint) ([]RecipeView, error) {
	var recipes []models.Recipe
	err := config.DB.
		Preload("Items.Ingredient").
		Where("restaurant_id = ?", restaurantID).
		Order("name ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	out := make([]RecipeView, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, viewOf(r))
	}
	return out, nil
}

func (s *RecipeService) Get(restaurantID, recipeID uint) (*RecipeView, error) {
	var recipe models.Recipe
	err := config.DB.
		Preload("Items.Ingredient").
		Where("id = ? AND restaurant_id = ?", recipeID, restaurantID).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	v := viewOf(recipe)
	return &v, nil
}

func (s *RecipeService) Create(restaurantID uint, in RecipeInput) (*RecipeView, error) {
	recipe := models.Recipe{
		RestaurantID: restaurantID,
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Description:  in.Description,
		SellingPrice: in.SellingPrice,
	}
	if err := config.DB.Create(&recipe).Error; err != nil {
		return nil, err
	}
	if err := s.replaceLines(restaurantID, &recipe, in.Items); err != nil {
		return nil, err
	}
	return s.Get(restaurantID, recipe.ID)
}

func (s *RecipeService) Update(restaurantID, recipeID uint, in RecipeInput) (*RecipeView, error) {
	var recipe models.Recipe
	if err := config.DB.
		Where("id = ? AND restaurant_id = ?", recipeID, restaurantID).
		First(&recipe).Error; err != nil {
		return nil, err
	}

	recipe.Name = in.Name
	recipe.Description = in.Description
	recipe.CategoryID = in.CategoryID
	recipe.SellingPrice = in.SellingPrice
	if err := config.DB.Save(&recipe).Error; err != nil {
		return nil, err
	}
	if err := s.replaceLines(restaurantID, &recipe, in.Items); err != nil {
		return nil, err
	}
	return s.Get(restaurantID, recipeID)
}

func (s *RecipeService) Delete(restaurantID, recipeID uint) error {
	var recipe models.Recipe
	if err := config.DB.
		Where("id = ? AND restaurant_id = ?", recipeID, restaurantID).
		First(&recipe).Error; err != nil {
		return err
	}
	if err := config.DB.Where("recipe_id = ?", recipe.ID).
		Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&recipe).Error
}

// replaceLines swaps the ingredient lines wholesale and recomputes the stored
// cost from the referenced ingredients' current unit costs.
func (s *RecipeService) replaceLines(restaurantID uint, recipe *models.Recipe, lines []RecipeLineInput) error {
	if err := config.DB.Where("recipe_id = ?", recipe.ID).
		Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}

	var costLines []utils.CostLine
	for _, l := range lines {
		var ing models.Ingredient
		if err := config.DB.
			Where("id = ? AND restaurant_id = ?", l.IngredientID, restaurantID).
			First(&ing).Error; err != nil {
			return err
		}
		unit := l.Unit
		if unit == "" {
			unit = ing.StorageUnit
		}
		ri := models.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: ing.ID,
			Quantity:     l.Quantity,
			Unit:         unit,
		}
		if err := config.DB.Create(&ri).Error; err != nil {
			return err
		}
		costLines = append(costLines, utils.CostLine{Quantity: l.Quantity, CostPerUnit: ing.CostPerUnit})
	}

	recipe.Cost = utils.RecipeCost(costLines)
	return config.DB.Model(&models.Recipe{}).
		Where("id = ?", recipe.ID).
		Update("cost", recipe.Cost).Error
}

// recomputeRecipesUsing refreshes the stored cost of every recipe referencing the
// ingredient. Called after an ingredient price or conversion edit.
func recomputeRecipesUsing(ingredientID uint) error {
	var lines []models.RecipeIngredient
	if err := config.DB.Where("ingredient_id = ?", ingredientID).Find(&lines).Error; err != nil {
		return err
	}
	seen := map[uint]bool{}
	for _, l := range lines {
		if seen[l.RecipeID] {
			continue
		}
		seen[l.RecipeID] = true
		if err := recomputeRecipeCost(l.RecipeID); err != nil {
			return err
		}
	}
	return nil
}

func recomputeRecipeCost(recipeID uint) error {
	var lines []models.RecipeIngredient
	if err := config.DB.
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Find(&lines).Error; err != nil {
		return err
	}
	var costLines []utils.CostLine
	for _, l := range lines {
		if l.Ingredient == nil {
			continue
		}
		costLines = append(costLines, utils.CostLine{Quantity: l.Quantity, CostPerUnit: l.Ingredient.CostPerUnit})
	}
	return config.DB.Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		Update("cost", utils.RecipeCost(costLines)).Error
}
