package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MinRoomImages is the minimum number of images a room listing must carry.
const MinRoomImages = 3

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string  `gorm:"size:255" json:"title"`
	Slug        string  `gorm:"uniqueIndex;size:255" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`
	MaxGuest    int     `gorm:"column:max_guest" json:"maxGuest"`
	RoomSize    string  `gorm:"column:room_size;size:50" json:"roomSize"`

	// Image URLs and amenity names, stored as JSON columns.
	Images    datatypes.JSON `json:"images"`
	Amenities datatypes.JSON `json:"amenities"`

	Featured  bool `gorm:"default:false" json:"featured"`
	Available bool `gorm:"default:true" json:"available"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
