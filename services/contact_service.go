package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/nirvana726/Woods/models"
)

var ErrInvalidContactStatus = errors.New("contact status must be read or unread")

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// Create persists a guest message with status unread.
func (s *ContactService) Create(contact *models.Contact) error {
	contact.Status = models.ContactStatusUnread
	contact.Email = strings.ToLower(strings.TrimSpace(contact.Email))
	return s.db.Create(contact).Error
}

func (s *ContactService) List() ([]models.Contact, error) {
	var messages []models.Contact
	err := s.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (s *ContactService) UpdateStatus(id uint, status string) (models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		return contact, err
	}

	if !models.IsValidContactStatus(status) {
		return contact, ErrInvalidContactStatus
	}

	if err := s.db.Model(&contact).Update("status", status).Error; err != nil {
		return contact, err
	}
	return contact, nil
}

func (s *ContactService) Delete(id uint) error {
	result := s.db.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
