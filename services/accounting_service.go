package services

import (
	"backend/config"
	"backend/models"
	"backend/utils"
)

type AccountingService struct{}

func NewAccountingService() *AccountingService { return &AccountingService{} }

type AccountingSummary struct {
	TotalRecipes     int64   `json:"total_recipes"`
	TotalIngredients int64   `json:"total_ingredients"`
	TotalRecipeCosts float64 `json:"total_recipe_costs"`
	AvgRecipeCost    float64 `json:"avg_recipe_cost"`
	AvgMargin        float64 `json:"avg_margin"`
}

// SummarizeRecipes computes the dashboard aggregates from already-loaded rows.
// avg_margin is the arithmetic mean of per-recipe margin percentages, not total
// profit over total revenue; a few cheap high-margin dishes therefore pull the
// average up even if they sell little. An empty set yields zeros across the
// board.
func SummarizeRecipes(recipes []models.Recipe, ingredientCount int64) AccountingSummary {
	out := AccountingSummary{
		TotalRecipes:     int64(len(recipes)),
		TotalIngredients: ingredientCount,
	}
	if len(recipes) == 0 {
		return out
	}

	var marginSum float64
	for _, r := range recipes {
		out.TotalRecipeCosts += r.Cost
		marginSum += utils.MarginPercentage(r.SellingPrice, r.Cost)
	}
	out.AvgRecipeCost = utils.RoundCurrency(out.TotalRecipeCosts / float64(len(recipes)))
	out.AvgMargin = utils.RoundCurrency(marginSum / float64(len(recipes)))
	out.TotalRecipeCosts = utils.RoundCurrency(out.TotalRecipeCosts)
	return out
}

func (s *AccountingService) Summary(restaurantID uint) (*AccountingSummary, error) {
	var recipes []models.Recipe
	if err := config.DB.
		Where("restaurant_id = ?", restaurantID).
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	var ingredients int64
	if err := config.DB.Model(&models.Ingredient{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&ingredients).Error; err != nil {
		return nil, err
	}

	summary := SummarizeRecipes(recipes, ingredients)
	return &summary, nil
}
