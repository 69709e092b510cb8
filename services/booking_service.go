package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nirvana726/Woods/models"
)

var (
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")
	ErrGuestsRequired          = errors.New("at least 1 guest is required")
	ErrInvalidBookingStatus    = errors.New("invalid booking status")
	ErrInvalidTransition       = errors.New("booking status transition not allowed")
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// Create validates the guest-submitted booking, assigns a reference code and
// persists it with status pending.
func (s *BookingService) Create(booking *models.Booking) error {
	if !booking.CheckOutDate.After(booking.CheckInDate) {
		return ErrCheckOutNotAfterCheckIn
	}
	if booking.Guests < 1 {
		return ErrGuestsRequired
	}

	booking.Status = models.BookingStatusPending
	booking.ReferenceCode = newReferenceCode()
	booking.Email = strings.ToLower(strings.TrimSpace(booking.Email))

	return s.db.Create(booking).Error
}

func (s *BookingService) List() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.db.First(&booking, id).Error
	return booking, err
}

// UpdateStatus moves a booking through its lifecycle. Only transitions
// pending→confirmed|cancelled and confirmed→completed|cancelled are allowed.
func (s *BookingService) UpdateStatus(id uint, status string) (models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		return booking, err
	}

	if !models.IsValidBookingStatus(status) {
		return booking, ErrInvalidBookingStatus
	}
	if !models.CanTransitionBookingStatus(booking.Status, status) {
		return booking, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	if err := s.db.Model(&booking).Update("status", status).Error; err != nil {
		return booking, err
	}
	return booking, nil
}

func (s *BookingService) Delete(id uint) error {
	result := s.db.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// newReferenceCode builds a short human-quotable booking reference.
func newReferenceCode() string {
	return "WD-" + strings.ToUpper(uuid.NewString()[:8])
}
