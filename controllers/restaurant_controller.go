package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func GetRestaurant(c *gin.Context) {
	svc := services.NewRestaurantService()
	r, err := svc.Get(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not set up yet"})
		return
	}
	c.JSON(http.StatusOK, r)
}

func UpsertRestaurant(c *gin.Context) {
	var input services.RestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewRestaurantService()
	r, err := svc.Upsert(currentUserID(c), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}
