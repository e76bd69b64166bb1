package controllers

import (
	"fmt"
	"net/http"

	"backend/config"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PhotoController struct {
	Vision *services.VisionService
}

func NewPhotoController(vision *services.VisionService) *PhotoController {
	return &PhotoController{Vision: vision}
}

type PhotoInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadProgressPhoto stores a progress photo under the caller's user id and
// returns its public URL. The photo itself is never written to the database.
func (p *PhotoController) UploadProgressPhoto(c *gin.Context) {
	var input PhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "data is missing"})
		return
	}

	userID := c.GetUint("userID")
	url, err := utils.UploadBase64ImageToS3(input.ImageBase64, fmt.Sprintf("user-%d", userID))
	if err != nil {
		config.Logger().Error("photo upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": internalErrorMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}

// AnalyzeProgressPhoto is a thin passthrough to the label-detection API.
func (p *PhotoController) AnalyzeProgressPhoto(c *gin.Context) {
	var input PhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "data is missing"})
		return
	}

	if p.Vision == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "image analysis is not configured"})
		return
	}

	labels, err := p.Vision.RecognizeLabels(input.ImageBase64)
	if err != nil {
		config.Logger().Error("photo analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": internalErrorMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "labels": labels})
}
