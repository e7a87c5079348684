package upload

import (
	"context"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/reignite/reignite/internal/domain"
)

// Image categories accepted by the upload endpoint. Each maps to a directory
// in the file store.
var allowedCategories = []string{"products", "users", "projects"}

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadResponse carries the public URL of a stored image.
type UploadResponse struct {
	URL string `json:"url"`
}

// Service stores uploaded images and hands back their public URLs.
type Service interface {
	SaveImage(ctx context.Context, category, originalName, contentType string, size int64, r io.Reader) (*UploadResponse, error)
}

type uploadService struct {
	store    domain.FileStore
	maxBytes int64
}

// NewService creates a new upload Service. maxBytes caps the accepted
// payload size.
func NewService(store domain.FileStore, maxBytes int64) Service {
	return &uploadService{store: store, maxBytes: maxBytes}
}

func (s *uploadService) SaveImage(ctx context.Context, category, originalName, contentType string, size int64, r io.Reader) (*UploadResponse, error) {
	if !slices.Contains(allowedCategories, category) {
		return nil, domain.NewAppError(domain.CodeValidation, "unknown upload category", nil)
	}
	ext, ok := allowedContentTypes[strings.ToLower(contentType)]
	if !ok {
		return nil, domain.NewAppError(domain.CodeValidation, "unsupported image type", nil)
	}
	if size <= 0 || size > s.maxBytes {
		return nil, domain.NewAppError(domain.CodeValidation, "file exceeds the upload size limit", nil)
	}

	// Keep the original extension when it matches the declared type; the
	// stored name is always a fresh uuid.
	if orig := strings.ToLower(filepath.Ext(originalName)); orig == ext || (orig == ".jpeg" && ext == ".jpg") {
		ext = orig
	}
	name := uuid.NewString() + ext

	url, err := s.store.Save(ctx, category, name, contentType, io.LimitReader(r, s.maxBytes))
	if err != nil {
		if domain.IsValidation(err) {
			return nil, err
		}
		return nil, domain.NewAppError(domain.CodeInternal, "failed to store upload", err)
	}
	return &UploadResponse{URL: url}, nil
}
