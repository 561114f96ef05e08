package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DigitalMenuInput struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

func ListDigitalMenus(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	menus, err := menuService().List(restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, menus)
}

func GetDigitalMenu(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	menu, err := menuService().Get(restaurantID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
		return
	}
	c.JSON(http.StatusOK, menu)
}

func CreateDigitalMenu(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	var input DigitalMenuInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	menu, err := menuService().Create(restaurantID, input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, menu)
}

func UpdateDigitalMenu(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input DigitalMenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	menu, err := menuService().Update(restaurantID, id, input.Name, input.Status)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
		return
	}
	c.JSON(http.StatusOK, menu)
}

func DeleteDigitalMenu(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := menuService().Delete(restaurantID, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu deleted"})
}

// ---------- category bindings ----------

type MenuCategoryInput struct {
	CategoryID   uint `json:"category_id" binding:"required"`
	DisplayOrder int  `json:"display_order"`
}

func AddMenuCategory(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	menuID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input MenuCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mc, err := menuService().AddCategory(restaurantID, menuID, input.CategoryID, input.DisplayOrder)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, mc)
}

func UpdateMenuCategoryOrder(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	menuID, ok := paramID(c, "id")
	if !ok {
		return
	}
	bindingID, ok := paramID(c, "categoryId")
	if !ok {
		return
	}
	var input struct {
		DisplayOrder int `json:"display_order"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := menuService().UpdateCategoryOrder(restaurantID, menuID, bindingID, input.DisplayOrder); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "binding not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order updated"})
}

func RemoveMenuCategory(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	menuID, ok := paramID(c, "id")
	if !ok {
		return
	}
	bindingID, ok := paramID(c, "categoryId")
	if !ok {
		return
	}
	if err := menuService().RemoveCategory(restaurantID, menuID, bindingID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category removed"})
}

// ---------- apply / publish ----------

func ApplyTemplate(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	menuID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input struct {
		TemplateID uint `json:"template_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	menu, err := menuService().ApplyTemplate(restaurantID, menuID, input.TemplateID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, menu)
}

func PublishDigitalMenu(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	menuID, ok := paramID(c, "id")
	if !ok {
		return
	}
	menu, err := menuService().Publish(currentUserID(c), restaurantID, menuID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, menu)
}
