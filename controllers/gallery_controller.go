package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nirvana726/Woods/models"
	"github.com/nirvana726/Woods/services"
)

const maxGalleryUpload = 10

type GalleryController struct {
	Gallery *services.GalleryService
}

func NewGalleryController(gallery *services.GalleryService) *GalleryController {
	return &GalleryController{Gallery: gallery}
}

// GetGallery returns one page of gallery images.
func (ctrl *GalleryController) GetGallery(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := ctrl.Gallery.List(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// UploadImages uploads up to ten images to object storage and records each
// one. Files are processed in order; a failure aborts the request without
// removing objects already uploaded.
func (ctrl *GalleryController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No files uploaded"})
		return
	}
	if len(files) > maxGalleryUpload {
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("At most %d images per upload", maxGalleryUpload)})
		return
	}

	if msg := validateImageUploads(files); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	uploaded := make([]models.GalleryImage, 0, len(files))
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unreadable image file"})
			return
		}
		image, err := ctrl.Gallery.Upload(c.Request.Context(), f, header.Filename)
		f.Close()
		if err != nil {
			logrus.Errorf("gallery upload failed for %s: %v", header.Filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed"})
			return
		}
		uploaded = append(uploaded, image)
	}

	c.JSON(http.StatusCreated, uploaded)
}

// DeleteImage removes both the stored object and the database row.
func (ctrl *GalleryController) DeleteImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image id"})
		return
	}

	if err := ctrl.Gallery.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Image not found"})
			return
		}
		logrus.Errorf("gallery delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
