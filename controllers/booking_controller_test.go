package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/nirvana726/Woods/models"
	"github.com/nirvana726/Woods/services"
)

func bookingRouter(svc *services.BookingService) *gin.Engine {
	ctrl := NewBookingController(svc, nil)
	r := gin.New()
	r.POST("/api/bookings", ctrl.CreateBooking)
	r.PUT("/api/bookings/:id", ctrl.UpdateBookingStatus)
	return r
}

func TestCreateBookingReturnsPending(t *testing.T) {
	db, mock := newMockDB(t)
	r := bookingRouter(services.NewBookingService(db))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bookings`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	payload := `{"roomId":"family","firstname":"A","lastname":"B","email":"a@b.com","phone":"123","checkInDate":"2025-01-01","checkOutDate":"2025-01-03","guests":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool           `json:"success"`
		Booking models.Booking `json:"booking"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Booking.Status != models.BookingStatusPending {
		t.Errorf("got status %q, want pending", resp.Booking.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingRejectsBadDateOrder(t *testing.T) {
	db, mock := newMockDB(t)
	r := bookingRouter(services.NewBookingService(db))

	payload := `{"roomId":"family","firstname":"A","lastname":"B","email":"a@b.com","phone":"123","checkInDate":"2025-01-03","checkOutDate":"2025-01-01","guests":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no database writes expected: %v", err)
	}
}

func TestCreateBookingRejectsMissingFields(t *testing.T) {
	db, _ := newMockDB(t)
	r := bookingRouter(services.NewBookingService(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"roomId":"family"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
}

func TestUpdateBookingStatusRejectsInvalidTransition(t *testing.T) {
	db, mock := newMockDB(t)
	r := bookingRouter(services.NewBookingService(db))

	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, models.BookingStatusCancelled))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/1", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400: %s", w.Code, w.Body.String())
	}
}
