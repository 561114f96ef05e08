package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type CategoryInput struct {
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type"`
	DisplayOrder int    `json:"display_order"`
}

// GET /categories?type=menu_item
func ListCategories(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	svc := services.NewCategoryService()
	cats, err := svc.List(restaurantID, c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cats)
}

func CreateCategory(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewCategoryService()
	cat, err := svc.Create(restaurantID, input.Name, input.Type, input.DisplayOrder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func UpdateCategory(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewCategoryService()
	cat, err := svc.Update(restaurantID, id, input.Name, input.DisplayOrder)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func DeleteCategory(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	svc := services.NewCategoryService()
	if err := svc.Delete(restaurantID, id); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
