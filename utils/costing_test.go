package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostPerStorageUnit(t *testing.T) {
	// 150 per kg bought, 1000 g per kg -> 0.15 per g
	got, err := CostPerStorageUnit(150, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 0.15, got, 1e-9)

	got, err = CostPerStorageUnit(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestCostPerStorageUnitRejectsBadFactor(t *testing.T) {
	_, err := CostPerStorageUnit(10, 0)
	assert.ErrorIs(t, err, ErrNonPositiveConversion)

	_, err = CostPerStorageUnit(10, -2)
	assert.ErrorIs(t, err, ErrNonPositiveConversion)
}

func TestRecipeCost(t *testing.T) {
	lines := []CostLine{
		{Quantity: 200, CostPerUnit: 0.15}, // 30
		{Quantity: 50, CostPerUnit: 0.02},  // 1
		{Quantity: 3, CostPerUnit: 2},      // 6
	}
	assert.InDelta(t, 37, RecipeCost(lines), 1e-9)
}

func TestRecipeCostEmpty(t *testing.T) {
	assert.Equal(t, 0.0, RecipeCost(nil))
	assert.Equal(t, 0.0, RecipeCost([]CostLine{}))
}

func TestMarginPercentage(t *testing.T) {
	assert.InDelta(t, 60, MarginPercentage(100, 40), 1e-9)
	assert.InDelta(t, 60, Profit(100, 40), 1e-9)

	// selling below cost goes negative, not clamped
	assert.InDelta(t, -50, MarginPercentage(10, 15), 1e-9)
}

func TestMarginPercentageZeroPrice(t *testing.T) {
	// documented sentinel: a free dish reports 0, never NaN or -Inf
	got := MarginPercentage(0, 10)
	assert.Equal(t, 0.0, got)
	assert.False(t, got != got, "must not be NaN")
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 33.33, RoundCurrency(100.0/3.0))
	assert.Equal(t, 0.15, RoundCurrency(0.15))
	assert.Equal(t, 2.68, RoundCurrency(2.675000001))
}
