package services

import (
	"encoding/json"
	"sort"

	"gorm.io/gorm"

	"github.com/nirvana726/Woods/models"
)

type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

// List returns rooms newest first, optionally filtered by the featured flag.
func (s *RoomService) List(featured *bool) ([]models.Room, error) {
	query := s.db.Order("created_at DESC")
	if featured != nil {
		query = query.Where("featured = ?", *featured)
	}
	var rooms []models.Room
	err := query.Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetBySlug(slug string) (models.Room, error) {
	var room models.Room
	err := s.db.Where("slug = ?", slug).First(&room).Error
	return room, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := s.db.First(&room, id).Error
	return room, err
}

// Related returns up to three other rooms for the room detail page.
func (s *RoomService) Related(currentRoomID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.db.Where("id <> ?", currentRoomID).Limit(3).Find(&rooms).Error
	return rooms, err
}

// Amenities collects the distinct amenity names across all rooms. Amenities
// live in a JSON column, so the set is aggregated in Go.
func (s *RoomService) Amenities() ([]string, error) {
	var rooms []models.Room
	if err := s.db.Select("amenities").Find(&rooms).Error; err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	for _, room := range rooms {
		if len(room.Amenities) == 0 {
			continue
		}
		var amenities []string
		if err := json.Unmarshal(room.Amenities, &amenities); err != nil {
			continue
		}
		for _, a := range amenities {
			seen[a] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Strings(out)
	return out, nil
}

// Create derives a unique slug from the title and persists the room.
func (s *RoomService) Create(room *models.Room) error {
	slug, err := UniqueSlug(s.db, "rooms", room.Title)
	if err != nil {
		return err
	}
	room.Slug = slug
	return s.db.Create(room).Error
}

// Update applies a partial update. A title change re-derives the slug.
func (s *RoomService) Update(id uint, updates map[string]interface{}) (models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, id).Error; err != nil {
		return room, err
	}

	if title, ok := updates["title"].(string); ok && title != "" && title != room.Title {
		slug, err := UniqueSlug(s.db, "rooms", title)
		if err != nil {
			return room, err
		}
		updates["slug"] = slug
	}

	if err := s.db.Model(&room).Updates(updates).Error; err != nil {
		return room, err
	}
	return room, nil
}

func (s *RoomService) Delete(id uint) error {
	result := s.db.Delete(&models.Room{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
