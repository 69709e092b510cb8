package controllers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/nirvana726/Woods/models"
	"github.com/nirvana726/Woods/services"
	"github.com/nirvana726/Woods/utils"
)

const listCacheTTL = 5 * time.Minute

var roomCacheKeys = []string{"rooms:list:all", "rooms:list:featured", "rooms:list:unfeatured"}

type RoomController struct {
	Rooms   *services.RoomService
	Storage services.ObjectStorage
	Cache   *redis.Client
}

func NewRoomController(rooms *services.RoomService, storage services.ObjectStorage, cache *redis.Client) *RoomController {
	return &RoomController{Rooms: rooms, Storage: storage, Cache: cache}
}

func roomListCacheKey(featured *bool) string {
	switch {
	case featured == nil:
		return "rooms:list:all"
	case *featured:
		return "rooms:list:featured"
	default:
		return "rooms:list:unfeatured"
	}
}

func (ctrl *RoomController) invalidateCache(c *gin.Context) {
	if ctrl.Cache == nil {
		return
	}
	if err := utils.DeleteCache(c.Request.Context(), ctrl.Cache, roomCacheKeys...); err != nil {
		logrus.Warnf("room cache invalidation failed: %v", err)
	}
}

// GetRooms lists rooms, optionally filtered by the featured flag.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		value := raw == "true"
		featured = &value
	}

	cacheKey := roomListCacheKey(featured)
	if ctrl.Cache != nil {
		var cached []models.Room
		if hit, err := utils.GetCache(c.Request.Context(), ctrl.Cache, cacheKey, &cached); err == nil && hit {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	rooms, err := ctrl.Rooms.List(featured)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if ctrl.Cache != nil {
		if err := utils.SetCache(c.Request.Context(), ctrl.Cache, cacheKey, rooms, listCacheTTL); err != nil {
			logrus.Warnf("room cache set failed: %v", err)
		}
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom returns one room by slug.
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	room, err := ctrl.Rooms.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, room)
}

// GetRelatedRooms returns up to three other rooms.
func (ctrl *RoomController) GetRelatedRooms(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("currentRoomId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room id"})
		return
	}
	rooms, err := ctrl.Rooms.Related(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomAmenities lists the distinct amenity names across rooms.
func (ctrl *RoomController) GetRoomAmenities(c *gin.Context) {
	amenities, err := ctrl.Rooms.Amenities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, amenities)
}

// CreateRoom creates a room from a multipart form. At least three images
// must be attached; every upload has to succeed before the row is written.
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	files := form.File["images"]
	if len(files) < models.MinRoomImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least 3 images are required"})
		return
	}
	if msg := validateImageUploads(files); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	title := formValue(form, "title")
	description := formValue(form, "description")
	roomSize := formValue(form, "roomSize")
	rawAmenities := formValue(form, "amenities")
	if title == "" || description == "" || roomSize == "" || rawAmenities == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, description, price, maxGuest, roomSize and amenities are required"})
		return
	}

	price, err := strconv.ParseFloat(formValue(form, "price"), 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a non-negative number"})
		return
	}
	maxGuest, err := strconv.Atoi(formValue(form, "maxGuest"))
	if err != nil || maxGuest < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maxGuest must be at least 1"})
		return
	}

	var amenities []string
	if err := json.Unmarshal([]byte(rawAmenities), &amenities); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amenities must be a JSON array of strings"})
		return
	}

	urls, err := ctrl.uploadImages(c, files)
	if err != nil {
		logrus.Errorf("room image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	imagesJSON, _ := json.Marshal(urls)
	amenitiesJSON, _ := json.Marshal(amenities)

	room := models.Room{
		Title:       title,
		Description: description,
		Price:       price,
		MaxGuest:    maxGuest,
		RoomSize:    roomSize,
		Images:      datatypes.JSON(imagesJSON),
		Amenities:   datatypes.JSON(amenitiesJSON),
		Featured:    formValue(form, "featured") == "true",
		Available:   formValue(form, "available") != "false",
	}

	if err := ctrl.Rooms.Create(&room); err != nil {
		if isDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "A room with this title already exists"})
			return
		}
		logrus.Errorf("room creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	ctrl.invalidateCache(c)
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom applies a partial update from a multipart form, with optional
// image replacement.
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room id"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	updates := map[string]interface{}{}
	for _, field := range []string{"title", "description", "roomSize"} {
		if v, present := formField(form, field); present {
			updates[columnFor(field)] = v
		}
	}
	if v, present := formField(form, "price"); present {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a non-negative number"})
			return
		}
		updates["price"] = price
	}
	if v, present := formField(form, "maxGuest"); present {
		maxGuest, err := strconv.Atoi(v)
		if err != nil || maxGuest < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxGuest must be at least 1"})
			return
		}
		updates["max_guest"] = maxGuest
	}
	if v, present := formField(form, "featured"); present {
		updates["featured"] = v == "true"
	}
	if v, present := formField(form, "available"); present {
		updates["available"] = v == "true"
	}
	if v, present := formField(form, "amenities"); present {
		var amenities []string
		if err := json.Unmarshal([]byte(v), &amenities); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amenities must be a JSON array of strings"})
			return
		}
		amenitiesJSON, _ := json.Marshal(amenities)
		updates["amenities"] = datatypes.JSON(amenitiesJSON)
	}

	if files := form.File["images"]; len(files) > 0 {
		if msg := validateImageUploads(files); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		urls, err := ctrl.uploadImages(c, files)
		if err != nil {
			logrus.Errorf("room image upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
			return
		}
		imagesJSON, _ := json.Marshal(urls)
		updates["images"] = datatypes.JSON(imagesJSON)
	}

	room, err := ctrl.Rooms.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		if isDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "A room with this title already exists"})
			return
		}
		logrus.Errorf("room update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}

	ctrl.invalidateCache(c)
	c.JSON(http.StatusOK, room)
}

// DeleteRoom removes a room listing.
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room id"})
		return
	}

	if err := ctrl.Rooms.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room"})
		return
	}

	ctrl.invalidateCache(c)
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}

func (ctrl *RoomController) uploadImages(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		result, err := ctrl.Storage.Upload(c.Request.Context(), f, "rooms", header.Filename)
		f.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, result.URL)
	}
	return urls, nil
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func formField(form *multipart.Form, key string) (string, bool) {
	if values := form.Value[key]; len(values) > 0 {
		return values[0], true
	}
	return "", false
}

func columnFor(field string) string {
	if field == "roomSize" {
		return "room_size"
	}
	return field
}
