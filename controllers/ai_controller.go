package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// POST /ai/extract-menu  { "image_base64": "data:…" }
func ExtractMenuItems(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	detector, err := services.NewRekognitionDetector()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewExtractionService(detector)
	drafts, err := svc.ExtractMenuItems(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": drafts})
}

// POST /ai/generate-template  { "prompt": "...", "primary_color": "#...", "accent_color": "#..." }
func GenerateTemplateStyle(c *gin.Context) {
	var req struct {
		Prompt       string `json:"prompt" binding:"required"`
		PrimaryColor string `json:"primary_color"`
		AccentColor  string `json:"accent_color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	svc := services.NewTemplateService()
	cfg := svc.GenerateStyle(req.Prompt, req.PrimaryColor, req.AccentColor)
	c.JSON(http.StatusOK, gin.H{"config": cfg})
}
