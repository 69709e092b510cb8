package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. A booking starts as pending; the admin console moves it
// through the rest of the lifecycle.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// bookingTransitions lists the allowed status moves. Cancelled and completed
// are terminal.
var bookingTransitions = map[string][]string{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCancelled: {},
	BookingStatusCompleted: {},
}

func IsValidBookingStatus(status string) bool {
	_, ok := bookingTransitions[status]
	return ok
}

// CanTransitionBookingStatus reports whether moving a booking from one
// status to another is allowed.
func CanTransitionBookingStatus(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"referenceCode"`

	// RoomID is the room identifier the visitor picked on the booking form.
	// It is free text, not a foreign key into rooms.
	RoomID string `gorm:"column:room_id;size:100" json:"roomId"`

	Firstname       string `gorm:"size:100" json:"firstname"`
	Lastname        string `gorm:"size:100" json:"lastname"`
	Email           string `gorm:"size:150" json:"email"`
	Phone           string `gorm:"size:50" json:"phone"`
	Country         string `gorm:"size:100" json:"country,omitempty"`
	SpecialRequests string `gorm:"column:special_requests;type:text" json:"specialRequests,omitempty"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate"`
	Guests       int       `json:"guests"`

	Status string `gorm:"size:20;default:pending" json:"status"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
