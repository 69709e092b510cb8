package controllers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nirvana726/Woods/services"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}
	return db, mock
}

type stubStorage struct {
	uploads  int
	destroys int
}

func (s *stubStorage) Upload(_ context.Context, _ io.Reader, folder, filename string) (*services.UploadResult, error) {
	s.uploads++
	return &services.UploadResult{
		PublicID: folder + "/" + filename,
		URL:      "https://cdn.example.com/" + folder + "/" + filename,
		Format:   "jpg",
		Bytes:    100,
	}, nil
}

func (s *stubStorage) Destroy(_ context.Context, _ string) error {
	s.destroys++
	return nil
}

// multipartBody builds a multipart form with the given fields and one image
// file per name in files.
func multipartBody(t *testing.T, fields map[string]string, fileField string, filenames []string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	for _, name := range filenames {
		part, err := writer.CreateFormFile(fileField, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func init() {
	gin.SetMode(gin.TestMode)
}
