package controllers

import (
	"backend/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UploadImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	Folder      string `json:"folder"`
}

// POST /images — generic data-URI upload for the authoring screens.
func UploadImage(c *gin.Context) {
	var req UploadImageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = "uploads"
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
