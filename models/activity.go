package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity categories shown on the public site.
const (
	CategoryCultural  = "Cultural"
	CategoryEvents    = "Events"
	CategoryNature    = "Nature"
	CategoryAdventure = "Adventure"
)

func IsValidCategory(category string) bool {
	switch category {
	case CategoryCultural, CategoryEvents, CategoryNature, CategoryAdventure:
		return true
	}
	return false
}

type Activity struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title           string `gorm:"size:255" json:"title"`
	Slug            string `gorm:"uniqueIndex;size:255" json:"slug"`
	Description     string `gorm:"type:text" json:"description"`
	LongDescription string `gorm:"column:long_description;type:text" json:"longDescription"`
	Category        string `gorm:"size:50;index" json:"category"`
	GroupSize       string `gorm:"column:group_size;size:50" json:"groupSize"`
	Image           string `gorm:"size:512" json:"image"`
	Icon            string `gorm:"size:100" json:"icon"`
	Featured        bool   `gorm:"default:false" json:"featured"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
