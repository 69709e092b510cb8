package controllers

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/gin-gonic/gin"
)

// maxImageUploadSize caps each uploaded image at 10MB, matching the site's
// upload limit.
const maxImageUploadSize = 10 << 20

// isDuplicateEntry reports whether err is a unique-index violation.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// parseIDParam reads the numeric :id route parameter.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts both date-only and RFC3339 timestamps from clients.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// isAllowedImage checks the upload extension against the formats the site
// serves.
func isAllowedImage(filename string) bool {
	name := strings.ToLower(filename)
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".webp"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// validateImageUploads applies the shared format and size gate to every
// file header. An empty string means all files pass.
func validateImageUploads(files []*multipart.FileHeader) string {
	for _, header := range files {
		if !isAllowedImage(header.Filename) {
			return "Only .jpg, .jpeg, .png and .webp formats allowed"
		}
		if header.Size > maxImageUploadSize {
			return "Images must be 10MB or smaller"
		}
	}
	return ""
}
