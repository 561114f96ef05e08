package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /expenses?from=2026-08-01&to=2026-09-01
func ListExpenses(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}

	var from, to *time.Time
	if f, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		if t, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
			from, to = &f, &t
		}
	}

	svc := services.NewExpenseService()
	expenses, err := svc.List(restaurantID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func CreateExpense(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	var input services.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewExpenseService()
	e, err := svc.Create(restaurantID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func UpdateExpense(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input services.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewExpenseService()
	e, err := svc.Update(restaurantID, id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func DeleteExpense(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	svc := services.NewExpenseService()
	if err := svc.Delete(restaurantID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}
