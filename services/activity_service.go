package services

import (
	"gorm.io/gorm"

	"github.com/nirvana726/Woods/models"
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// List returns activities newest first. An empty category or the literal
// "All Activities" means no filter.
func (s *ActivityService) List(category string) ([]models.Activity, error) {
	query := s.db.Order("created_at DESC")
	if category != "" && category != "All Activities" {
		query = query.Where("category = ?", category)
	}
	var activities []models.Activity
	err := query.Find(&activities).Error
	return activities, err
}

func (s *ActivityService) GetBySlug(slug string) (models.Activity, error) {
	var activity models.Activity
	err := s.db.Where("slug = ?", slug).First(&activity).Error
	return activity, err
}

func (s *ActivityService) GetByID(id uint) (models.Activity, error) {
	var activity models.Activity
	err := s.db.First(&activity, id).Error
	return activity, err
}

// Related returns up to three other activities in the same category.
func (s *ActivityService) Related(category string, currentActivityID uint) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.db.
		Where("category = ? AND id <> ?", category, currentActivityID).
		Limit(3).
		Find(&activities).Error
	return activities, err
}

// Create derives a unique slug from the title and persists the activity.
func (s *ActivityService) Create(activity *models.Activity) error {
	slug, err := UniqueSlug(s.db, "activities", activity.Title)
	if err != nil {
		return err
	}
	activity.Slug = slug
	return s.db.Create(activity).Error
}

// Update applies a partial update. A title change re-derives the slug.
func (s *ActivityService) Update(id uint, updates map[string]interface{}) (models.Activity, error) {
	var activity models.Activity
	if err := s.db.First(&activity, id).Error; err != nil {
		return activity, err
	}

	if title, ok := updates["title"].(string); ok && title != "" && title != activity.Title {
		slug, err := UniqueSlug(s.db, "activities", title)
		if err != nil {
			return activity, err
		}
		updates["slug"] = slug
	}

	if err := s.db.Model(&activity).Updates(updates).Error; err != nil {
		return activity, err
	}
	return activity, nil
}

func (s *ActivityService) Delete(id uint) error {
	result := s.db.Delete(&models.Activity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
