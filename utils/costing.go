package utils

import (
	"errors"
	"math"
)

// Pure recipe/ingredient cost math. Nothing in here touches the database; services
// call these and persist the results.

var ErrNonPositiveConversion = errors.New("conversion factor must be greater than zero")

// CostPerStorageUnit normalizes a purchase-unit cost to the unit recipes consume.
// A factor of zero or below is bad ingredient data and is rejected rather than
// producing Inf or a negative unit cost.
func CostPerStorageUnit(purchaseCost, conversionFactor float64) (float64, error) {
	if conversionFactor <= 0 {
		return 0, ErrNonPositiveConversion
	}
	return purchaseCost / conversionFactor, nil
}

type CostLine struct {
	Quantity    float64
	CostPerUnit float64
}

// RecipeCost sums quantity x cost-per-unit over all lines. No lines means zero cost.
func RecipeCost(lines []CostLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Quantity * l.CostPerUnit
	}
	return total
}

// MarginPercentage is profit as a percentage of selling price. A selling price of
// zero would divide by zero; by convention we report 0 there instead of NaN so the
// value stays safe to average. The result is unrounded; round only for display.
func MarginPercentage(sellingPrice, cost float64) float64 {
	if sellingPrice == 0 {
		return 0
	}
	return (sellingPrice - cost) / sellingPrice * 100
}

func Profit(sellingPrice, cost float64) float64 {
	return sellingPrice - cost
}

// RoundCurrency rounds to 2 decimal places for display. Stored and aggregated
// values are never pre-rounded.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
