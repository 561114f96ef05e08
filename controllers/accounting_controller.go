package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /accounting/summary
func AccountingSummary(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	svc := services.NewAccountingService()
	summary, err := svc.Summary(restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /accounting/expenses/month?date=2026-08-01
func MonthExpenseTotal(c *gin.Context) {
	restaurantID, ok := currentRestaurantID(c)
	if !ok {
		return
	}
	day := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}
	svc := services.NewExpenseService()
	total, err := svc.MonthTotal(restaurantID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"month": day.Format("2006-01"), "total": total})
}
