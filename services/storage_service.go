package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// UploadResult describes a stored object.
type UploadResult struct {
	PublicID string
	URL      string
	Format   string
	Bytes    int64
	Width    int
	Height   int
}

// ObjectStorage stores uploaded images. Upload success gates the database
// write for every image-bearing resource; Destroy is called before deleting
// a gallery row.
type ObjectStorage interface {
	Upload(ctx context.Context, r io.Reader, folder, filename string) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryStorage stores objects in Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, r io.Reader, folder, filename string) (*UploadResult, error) {
	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	return &UploadResult{
		PublicID: resp.PublicID,
		URL:      resp.SecureURL,
		Format:   resp.Format,
		Bytes:    int64(resp.Bytes),
		Width:    resp.Width,
		Height:   resp.Height,
	}, nil
}

func (s *CloudinaryStorage) Destroy(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	return nil
}

// DiskStorage writes objects under baseDir and serves them from the static
// /uploads route. Used when Cloudinary credentials are absent so the app
// still runs locally.
type DiskStorage struct {
	baseDir string
}

func NewDiskStorage(baseDir string) *DiskStorage {
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &DiskStorage{baseDir: baseDir}
}

func (s *DiskStorage) Upload(_ context.Context, r io.Reader, folder, filename string) (*UploadResult, error) {
	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("mkdir uploads dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.NewString() + ext
	fullpath := filepath.Join(dir, name)

	f, err := os.Create(fullpath)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	written, err := io.Copy(f, r)
	closeErr := f.Close()
	if err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("close file: %w", closeErr)
	}

	publicID := filepath.ToSlash(filepath.Join(folder, name))
	return &UploadResult{
		PublicID: publicID,
		URL:      "/uploads/" + publicID,
		Format:   strings.TrimPrefix(ext, "."),
		Bytes:    written,
	}, nil
}

func (s *DiskStorage) Destroy(_ context.Context, publicID string) error {
	fullpath := filepath.Join(s.baseDir, filepath.FromSlash(publicID))
	if err := os.Remove(fullpath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
