package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ContactStatusUnread = "unread"
	ContactStatusRead   = "read"
)

func IsValidContactStatus(status string) bool {
	return status == ContactStatusUnread || status == ContactStatusRead
}

type Contact struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"column:first_name;size:100" json:"firstName"`
	LastName  string `gorm:"column:last_name;size:100" json:"lastName"`
	Email     string `gorm:"size:150" json:"email"`
	Phone     string `gorm:"size:50" json:"phone,omitempty"`
	Subject   string `gorm:"size:255" json:"subject"`
	Message   string `gorm:"type:text" json:"message"`

	Status string `gorm:"size:20;default:unread" json:"status"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
