package services

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// UniqueSlug derives a URL-safe slug from title and suffixes it with a
// counter until no row in table carries it. Two activities titled
// "Local Culture" end up as local-culture and local-culture-1.
func UniqueSlug(db *gorm.DB, table, title string) (string, error) {
	base := slug.Make(title)
	candidate := base
	for counter := 1; ; counter++ {
		var n int64
		if err := db.Table(table).Where("slug = ?", candidate).Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
