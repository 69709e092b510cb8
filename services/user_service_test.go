package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func userRowWithPassword(t *testing.T, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	return sqlmock.NewRows([]string{"id", "name", "email", "password", "role"}).
		AddRow(1, "Admin User", "admin@woodsresort.local", string(hash), "admin")
}

func TestAuthenticateSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(userRowWithPassword(t, "admin123"))

	user, err := svc.Authenticate("Admin@WoodsResort.local", "admin123")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if user.Role != "admin" {
		t.Errorf("got role %q, want admin", user.Role)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(userRowWithPassword(t, "admin123"))

	if _, err := svc.Authenticate("admin@woodsresort.local", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := svc.Authenticate("nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}
