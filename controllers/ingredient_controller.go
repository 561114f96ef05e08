package controllers

import (
	"errors"
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

func ListIngredients(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	svc := services.NewIngredientService()
	ings, err := svc.List(restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ings)
}

func CreateIngredient(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	var input services.IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewIngredientService()
	ing, err := svc.Create(restaurantID, input)
	if err != nil {
		if errors.Is(err, utils.ErrNonPositiveConversion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ing)
}

func UpdateIngredient(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input services.IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewIngredientService()
	ing, err := svc.Update(restaurantID, id, input)
	if err != nil {
		if errors.Is(err, utils.ErrNonPositiveConversion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, ing)
}

func DeleteIngredient(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	svc := services.NewIngredientService()
	if err := svc.Delete(restaurantID, id); err != nil {
		if errors.Is(err, services.ErrIngredientInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ingredient deleted"})
}
