package services

import (
	"context"
	"io"
	"math"

	"gorm.io/gorm"

	"github.com/nirvana726/Woods/models"
)

type GalleryService struct {
	db      *gorm.DB
	storage ObjectStorage
}

func NewGalleryService(db *gorm.DB, storage ObjectStorage) *GalleryService {
	return &GalleryService{db: db, storage: storage}
}

// GalleryPage is one page of gallery images.
type GalleryPage struct {
	Images      []models.GalleryImage `json:"images"`
	TotalPages  int                   `json:"totalPages"`
	CurrentPage int                   `json:"currentPage"`
}

func (s *GalleryService) List(page, limit int) (GalleryPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var count int64
	if err := s.db.Model(&models.GalleryImage{}).Count(&count).Error; err != nil {
		return GalleryPage{}, err
	}

	var images []models.GalleryImage
	err := s.db.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&images).Error
	if err != nil {
		return GalleryPage{}, err
	}

	return GalleryPage{
		Images:      images,
		TotalPages:  int(math.Ceil(float64(count) / float64(limit))),
		CurrentPage: page,
	}, nil
}

// Upload stores one file in object storage and records it. The storage
// upload gates the database write; a failed row insert does not roll back
// the uploaded object.
func (s *GalleryService) Upload(ctx context.Context, r io.Reader, filename string) (models.GalleryImage, error) {
	result, err := s.storage.Upload(ctx, r, "gallery", filename)
	if err != nil {
		return models.GalleryImage{}, err
	}

	image := models.GalleryImage{
		PublicID: result.PublicID,
		URL:      result.URL,
		Filename: filename,
		Format:   result.Format,
		Bytes:    result.Bytes,
		Width:    result.Width,
		Height:   result.Height,
	}
	if err := s.db.Create(&image).Error; err != nil {
		return models.GalleryImage{}, err
	}
	return image, nil
}

// Delete destroys the storage asset, then removes the row. The row survives
// if the storage delete fails so the asset is never orphaned silently.
func (s *GalleryService) Delete(ctx context.Context, id uint) error {
	var image models.GalleryImage
	if err := s.db.First(&image, id).Error; err != nil {
		return err
	}

	if err := s.storage.Destroy(ctx, image.PublicID); err != nil {
		return err
	}

	return s.db.Delete(&image).Error
}
