package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUniqueSlugNoCollision(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT count").
		WithArgs("local-culture").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	slug, err := UniqueSlug(db, "activities", "Local Culture")
	if err != nil {
		t.Fatalf("UniqueSlug error: %v", err)
	}
	if slug != "local-culture" {
		t.Errorf("got slug %q, want local-culture", slug)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUniqueSlugCollisionSuffix(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT count").
		WithArgs("local-culture").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT count").
		WithArgs("local-culture-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	slug, err := UniqueSlug(db, "activities", "Local Culture")
	if err != nil {
		t.Fatalf("UniqueSlug error: %v", err)
	}
	if slug != "local-culture-1" {
		t.Errorf("got slug %q, want local-culture-1", slug)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
