package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// Shared across handlers so websocket viewers and the mutation paths see the
// same hub.
var MenuHub = services.NewMenuHub()

func menuService() *services.DigitalMenuService {
	return services.NewDigitalMenuService(MenuHub)
}

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get("userID")
	id, _ := v.(uint)
	return id
}

// currentRestaurantID aborts with 400 when the user has not set up a restaurant
// yet; every domain route needs the scope.
func currentRestaurantID(c *gin.Context) (uint, bool) {
	v, _ := c.Get("restaurantID")
	id, _ := v.(uint)
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "create your restaurant first"})
		return 0, false
	}
	return id, true
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
