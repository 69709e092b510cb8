package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GalleryImage is one uploaded asset. PublicID identifies the object in the
// external storage backend; deleting the row must also destroy that object.
type GalleryImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PublicID string `gorm:"column:public_id;size:255" json:"public_id"`
	URL      string `gorm:"size:512" json:"url"`
	Filename string `gorm:"size:255" json:"filename"`
	Format   string `gorm:"size:20" json:"format"`
	Bytes    int64  `json:"bytes"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`

	Tags datatypes.JSON `json:"tags,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}
