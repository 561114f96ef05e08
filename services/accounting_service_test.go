package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeRecipesEmpty(t *testing.T) {
	got := SummarizeRecipes(nil, 0)

	assert.Equal(t, int64(0), got.TotalRecipes)
	assert.Equal(t, int64(0), got.TotalIngredients)
	assert.Equal(t, 0.0, got.TotalRecipeCosts)
	assert.Equal(t, 0.0, got.AvgRecipeCost)
	assert.Equal(t, 0.0, got.AvgMargin)
}

func TestSummarizeRecipesTotals(t *testing.T) {
	recipes := []models.Recipe{
		{Cost: 40, SellingPrice: 100},
		{Cost: 10, SellingPrice: 20},
	}
	got := SummarizeRecipes(recipes, 7)

	assert.Equal(t, int64(2), got.TotalRecipes)
	assert.Equal(t, int64(7), got.TotalIngredients)
	assert.Equal(t, 50.0, got.TotalRecipeCosts)
	assert.Equal(t, 25.0, got.AvgRecipeCost)
	// margins 60% and 50% -> mean 55%
	assert.Equal(t, 55.0, got.AvgMargin)
}

func TestSummarizeRecipesMeanOfRatios(t *testing.T) {
	// margins 50% and 0%; mean-of-ratios gives 25%.
	// A ratio-of-sums over the same rows would give (110-105)/110 = 4.55%,
	// which is exactly what this summary must NOT report.
	recipes := []models.Recipe{
		{Cost: 5, SellingPrice: 10},
		{Cost: 100, SellingPrice: 100},
	}
	got := SummarizeRecipes(recipes, 0)

	assert.Equal(t, 25.0, got.AvgMargin)
	assert.NotEqual(t, 4.55, got.AvgMargin)
}

func TestSummarizeRecipesZeroPriceRecipe(t *testing.T) {
	// the zero-price sentinel (margin 0) keeps the average finite
	recipes := []models.Recipe{
		{Cost: 10, SellingPrice: 0},
		{Cost: 40, SellingPrice: 100},
	}
	got := SummarizeRecipes(recipes, 0)

	assert.Equal(t, 30.0, got.AvgMargin)
	assert.False(t, got.AvgMargin != got.AvgMargin, "must not be NaN")
}
