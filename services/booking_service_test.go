package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/nirvana726/Woods/models"
)

func validBooking() *models.Booking {
	return &models.Booking{
		RoomID:       "family",
		Firstname:    "A",
		Lastname:     "B",
		Email:        "a@b.com",
		Phone:        "123",
		CheckInDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		Guests:       2,
	}
}

func TestCreateBookingRejectsCheckOutBeforeCheckIn(t *testing.T) {
	svc := NewBookingService(nil)

	booking := validBooking()
	booking.CheckOutDate = booking.CheckInDate.AddDate(0, 0, -1)
	if err := svc.Create(booking); !errors.Is(err, ErrCheckOutNotAfterCheckIn) {
		t.Fatalf("got %v, want ErrCheckOutNotAfterCheckIn", err)
	}
}

func TestCreateBookingRejectsEqualDates(t *testing.T) {
	svc := NewBookingService(nil)

	booking := validBooking()
	booking.CheckOutDate = booking.CheckInDate
	if err := svc.Create(booking); !errors.Is(err, ErrCheckOutNotAfterCheckIn) {
		t.Fatalf("got %v, want ErrCheckOutNotAfterCheckIn", err)
	}
}

func TestCreateBookingRejectsZeroGuests(t *testing.T) {
	svc := NewBookingService(nil)

	booking := validBooking()
	booking.Guests = 0
	if err := svc.Create(booking); !errors.Is(err, ErrGuestsRequired) {
		t.Fatalf("got %v, want ErrGuestsRequired", err)
	}
}

func TestCreateBookingDefaultsPendingWithReference(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bookings`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	booking := validBooking()
	if err := svc.Create(booking); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if booking.Status != models.BookingStatusPending {
		t.Errorf("got status %q, want pending", booking.Status)
	}
	if !strings.HasPrefix(booking.ReferenceCode, "WD-") {
		t.Errorf("got reference code %q, want WD- prefix", booking.ReferenceCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func bookingRow(status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "status", "room_id", "email"}).
		AddRow(1, status, "family", "a@b.com")
}

func TestUpdateStatusAllowedTransition(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db)

	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(bookingRow(models.BookingStatusPending))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `bookings`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := svc.UpdateStatus(1, models.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Errorf("got status %q, want confirmed", booking.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateStatusRejectsBackwardTransition(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db)

	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(bookingRow(models.BookingStatusCompleted))

	if _, err := svc.UpdateStatus(1, models.BookingStatusPending); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("got %v, want ErrInvalidTransition", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db)

	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(bookingRow(models.BookingStatusPending))

	if _, err := svc.UpdateStatus(1, "archived"); !errors.Is(err, ErrInvalidBookingStatus) {
		t.Fatalf("got %v, want ErrInvalidBookingStatus", err)
	}
}
