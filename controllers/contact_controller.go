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

type createContactPayload struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type updateContactStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type ContactController struct {
	Contacts *services.ContactService
	Mailer   utils.Mailer
}

func NewContactController(contacts *services.ContactService, mailer utils.Mailer) *ContactController {
	return &ContactController{Contacts: contacts, Mailer: mailer}
}

// CreateContact accepts a public contact message.
func (ctrl *ContactController) CreateContact(c *gin.Context) {
	var payload createContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "firstName, lastName, email, subject and message are required"})
		return
	}

	contact := models.Contact{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Subject:   payload.Subject,
		Message:   payload.Message,
	}

	if err := ctrl.Contacts.Create(&contact); err != nil {
		logrus.Errorf("contact creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if ctrl.Mailer != nil {
		if err := ctrl.Mailer.SendContactReceived(c.Request.Context(), &contact); err != nil {
			logrus.Warnf("contact acknowledgement email failed: %v", err)
		}
	}

	c.JSON(http.StatusCreated, contact)
}

// GetContacts lists all messages, newest first.
func (ctrl *ContactController) GetContacts(c *gin.Context) {
	messages, err := ctrl.Contacts.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// UpdateContactStatus marks a message read or unread.
func (ctrl *ContactController) UpdateContactStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message id"})
		return
	}

	var payload updateContactStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}

	contact, err := ctrl.Contacts.UpdateStatus(id, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		case errors.Is(err, services.ErrInvalidContactStatus):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, contact)
}

// DeleteContact removes a message.
func (ctrl *ContactController) DeleteContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message id"})
		return
	}

	if err := ctrl.Contacts.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
