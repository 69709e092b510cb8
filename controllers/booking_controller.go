package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nirvana726/Woods/models"
	"github.com/nirvana726/Woods/services"
	"github.com/nirvana726/Woods/utils"
)

type createBookingPayload struct {
	RoomID          string `json:"roomId" binding:"required"`
	Firstname       string `json:"firstname" binding:"required"`
	Lastname        string `json:"lastname" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Country         string `json:"country"`
	SpecialRequests string `json:"specialRequests"`
	CheckInDate     string `json:"checkInDate" binding:"required"`
	CheckOutDate    string `json:"checkOutDate" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
}

type updateBookingStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type BookingController struct {
	Bookings *services.BookingService
	Mailer   utils.Mailer
}

func NewBookingController(bookings *services.BookingService, mailer utils.Mailer) *BookingController {
	return &BookingController{Bookings: bookings, Mailer: mailer}
}

// CreateBooking accepts a public booking inquiry and persists it with
// status pending. A confirmation email is best effort and never blocks the
// response.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "roomId, firstname, lastname, email, phone, checkInDate, checkOutDate and guests are required")
		return
	}

	checkIn, err := parseDate(payload.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid check-in date")
		return
	}
	checkOut, err := parseDate(payload.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid check-out date")
		return
	}

	booking := models.Booking{
		RoomID:          payload.RoomID,
		Firstname:       payload.Firstname,
		Lastname:        payload.Lastname,
		Email:           payload.Email,
		Phone:           payload.Phone,
		Country:         payload.Country,
		SpecialRequests: payload.SpecialRequests,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Guests:          payload.Guests,
	}

	if err := ctrl.Bookings.Create(&booking); err != nil {
		switch {
		case errors.Is(err, services.ErrCheckOutNotAfterCheckIn),
			errors.Is(err, services.ErrGuestsRequired):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			logrus.Errorf("booking creation failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	if ctrl.Mailer != nil {
		if err := ctrl.Mailer.SendBookingReceived(c.Request.Context(), &booking); err != nil {
			logrus.Warnf("booking confirmation email failed for %s: %v", booking.ReferenceCode, err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// GetBookings lists all bookings, newest first.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.Bookings.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(bookings),
		"bookings": bookings,
	})
}

// GetBooking returns one booking by id.
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	booking, err := ctrl.Bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

// UpdateBookingStatus moves a booking through its status lifecycle.
func (ctrl *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var payload updateBookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Status is required")
		return
	}

	booking, err := ctrl.Bookings.UpdateStatus(id, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, services.ErrInvalidBookingStatus),
			errors.Is(err, services.ErrInvalidTransition):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			logrus.Errorf("booking status update failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking status updated",
		"booking": booking,
	})
}

// DeleteBooking removes a booking record.
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	if err := ctrl.Bookings.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted successfully"})
}
