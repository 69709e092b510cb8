package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/nirvana726/Woods/services"
)

func galleryRouter(svc *services.GalleryService) *gin.Engine {
	ctrl := NewGalleryController(svc)
	r := gin.New()
	r.POST("/api/gallery", ctrl.UploadImages)
	r.DELETE("/api/gallery/:id", ctrl.DeleteImage)
	return r
}

func TestUploadImagesRejectsUnsupportedFormat(t *testing.T) {
	db, _ := newMockDB(t)
	storage := &stubStorage{}
	r := galleryRouter(services.NewGalleryService(db, storage))

	body, contentType := multipartBody(t, nil, "images", []string{"clip.gif"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gallery", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400: %s", w.Code, w.Body.String())
	}
	if storage.uploads != 0 {
		t.Errorf("got %d uploads, want 0", storage.uploads)
	}
}

func TestUploadImagesRejectsEmptyForm(t *testing.T) {
	db, _ := newMockDB(t)
	r := galleryRouter(services.NewGalleryService(db, &stubStorage{}))

	body, contentType := multipartBody(t, map[string]string{"note": "no files"}, "images", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gallery", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
}

func TestUploadImagesStoresEachFile(t *testing.T) {
	db, mock := newMockDB(t)
	storage := &stubStorage{}
	r := galleryRouter(services.NewGalleryService(db, storage))

	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `gallery_images`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
	}

	body, contentType := multipartBody(t, nil, "images", []string{"a.jpg", "b.png"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gallery", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", w.Code, w.Body.String())
	}
	if storage.uploads != 2 {
		t.Errorf("got %d uploads, want 2", storage.uploads)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteImageDestroysAsset(t *testing.T) {
	db, mock := newMockDB(t)
	storage := &stubStorage{}
	r := galleryRouter(services.NewGalleryService(db, storage))

	mock.ExpectQuery("SELECT (.+) FROM `gallery_images`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "public_id"}).AddRow(1, "gallery/sunset"))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `gallery_images`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/gallery/1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	if storage.destroys != 1 {
		t.Errorf("got %d destroy calls, want 1", storage.destroys)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteImageNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	storage := &stubStorage{}
	r := galleryRouter(services.NewGalleryService(db, storage))

	mock.ExpectQuery("SELECT (.+) FROM `gallery_images`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/gallery/42", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
	if storage.destroys != 0 {
		t.Errorf("got %d destroy calls, want 0", storage.destroys)
	}
}
