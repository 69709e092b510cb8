package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nirvana726/Woods/models"
	"github.com/nirvana726/Woods/services"
	"github.com/nirvana726/Woods/utils"
)

const activityListCacheKey = "activities:list:all"

type ActivityController struct {
	Activities *services.ActivityService
	Storage    services.ObjectStorage
	Cache      *redis.Client
}

func NewActivityController(activities *services.ActivityService, storage services.ObjectStorage, cache *redis.Client) *ActivityController {
	return &ActivityController{Activities: activities, Storage: storage, Cache: cache}
}

func (ctrl *ActivityController) invalidateCache(c *gin.Context) {
	if ctrl.Cache == nil {
		return
	}
	if err := utils.DeleteCache(c.Request.Context(), ctrl.Cache, activityListCacheKey); err != nil {
		logrus.Warnf("activity cache invalidation failed: %v", err)
	}
}

// GetActivities lists activities, optionally filtered by category. Only the
// unfiltered list is cached.
func (ctrl *ActivityController) GetActivities(c *gin.Context) {
	category := c.Query("category")
	cacheable := ctrl.Cache != nil && (category == "" || category == "All Activities")

	if cacheable {
		var cached []models.Activity
		if hit, err := utils.GetCache(c.Request.Context(), ctrl.Cache, activityListCacheKey, &cached); err == nil && hit {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	activities, err := ctrl.Activities.List(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if cacheable {
		if err := utils.SetCache(c.Request.Context(), ctrl.Cache, activityListCacheKey, activities, listCacheTTL); err != nil {
			logrus.Warnf("activity cache set failed: %v", err)
		}
	}
	c.JSON(http.StatusOK, activities)
}

// GetActivity returns one activity by slug.
func (ctrl *ActivityController) GetActivity(c *gin.Context) {
	activity, err := ctrl.Activities.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activity)
}

// GetRelatedActivities returns up to three other activities in a category.
func (ctrl *ActivityController) GetRelatedActivities(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("currentActivityId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return
	}
	activities, err := ctrl.Activities.Related(c.Param("category"), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// CreateActivity creates an activity from a multipart form with a single
// image file.
func (ctrl *ActivityController) CreateActivity(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	files := form.File["image"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	if msg := validateImageUploads(files); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	title := formValue(form, "title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	category := formValue(form, "category")
	if !models.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be one of Cultural, Events, Nature, Adventure"})
		return
	}

	header := files[0]
	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable image file"})
		return
	}
	result, err := ctrl.Storage.Upload(c.Request.Context(), f, "activities", header.Filename)
	f.Close()
	if err != nil {
		logrus.Errorf("activity image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	activity := models.Activity{
		Title:           title,
		Description:     formValue(form, "description"),
		LongDescription: formValue(form, "longDescription"),
		Category:        category,
		GroupSize:       formValue(form, "groupSize"),
		Image:           result.URL,
		Icon:            formValue(form, "icon"),
		Featured:        formValue(form, "featured") == "true",
	}

	if err := ctrl.Activities.Create(&activity); err != nil {
		logrus.Errorf("activity creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	ctrl.invalidateCache(c)
	c.JSON(http.StatusCreated, activity)
}

// UpdateActivity applies a partial update, with optional image replacement.
func (ctrl *ActivityController) UpdateActivity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	updates := map[string]interface{}{}
	for field, column := range map[string]string{
		"title":           "title",
		"description":     "description",
		"longDescription": "long_description",
		"groupSize":       "group_size",
		"icon":            "icon",
	} {
		if v, present := formField(form, field); present {
			updates[column] = v
		}
	}
	if v, present := formField(form, "category"); present {
		if !models.IsValidCategory(v) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be one of Cultural, Events, Nature, Adventure"})
			return
		}
		updates["category"] = v
	}
	if v, present := formField(form, "featured"); present {
		updates["featured"] = v == "true"
	}

	if files := form.File["image"]; len(files) > 0 {
		if msg := validateImageUploads(files); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		header := files[0]
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable image file"})
			return
		}
		result, err := ctrl.Storage.Upload(c.Request.Context(), f, "activities", header.Filename)
		f.Close()
		if err != nil {
			logrus.Errorf("activity image upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
			return
		}
		updates["image"] = result.URL
	}

	activity, err := ctrl.Activities.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		logrus.Errorf("activity update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}

	ctrl.invalidateCache(c)
	c.JSON(http.StatusOK, activity)
}

// DeleteActivity removes an activity.
func (ctrl *ActivityController) DeleteActivity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity id"})
		return
	}

	if err := ctrl.Activities.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}

	ctrl.invalidateCache(c)
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}
