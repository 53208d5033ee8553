package controllers

import (
	"biscenic-store/models"
	"log"

	"github.com/gin-gonic/gin"
)

const uploadFolder = "biscenic"

type UploadController struct {
	cloudinary *models.CloudinaryService
}

func NewUploadController(cloudinary *models.CloudinaryService) *UploadController {
	return &UploadController{cloudinary: cloudinary}
}

// @Summary Upload images
// @Description Upload images to the media store (Admin)
// @Tags Admin - Uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param images formData file true "Image files"
// @Success 200 {object} models.Response
// @Failure 503 {object} models.ErrorResponse
// @Router /admin/uploads [post]
func (ctrl *UploadController) UploadImages(c *gin.Context) {
	if ctrl.cloudinary == nil {
		c.JSON(503, gin.H{"success": false, "message": "Image uploads are temporarily unavailable"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid multipart form"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "At least one image is required"})
		return
	}

	for _, file := range files {
		if err := ctrl.cloudinary.ValidateImageFile(file); err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
	}

	images, err := ctrl.cloudinary.UploadMultipleImages(c.Request.Context(), files, uploadFolder)
	if err != nil {
		log.Printf("Failed to upload images: %v", err)
		c.JSON(502, gin.H{"success": false, "message": "Failed to upload images"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Images uploaded successfully", "data": images})
}
