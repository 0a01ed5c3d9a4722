package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/store"
	"github.com/MKhiriev/go-recipe-box/models"
)

const defaultUploadExt = ".jpg"

// NameGenerator produces unique file names.
type NameGenerator interface {
	Generate() string
}

type uploadService struct {
	files store.FileStorage
	names NameGenerator

	logger *logger.Logger
}

func NewUploadService(files store.FileStorage, names NameGenerator, logger *logger.Logger) UploadService {
	return &uploadService{
		files:  files,
		names:  names,
		logger: logger,
	}
}

// Upload stores r under a fresh UUIDv7 name that keeps the original file
// extension (".jpg" when there is none) and returns where it can be fetched.
func (s *uploadService) Upload(ctx context.Context, originalName, contentType string, r io.Reader) (models.UploadedFile, error) {
	log := logger.FromContext(ctx)

	if r == nil {
		return models.UploadedFile{}, ErrNoFileUploaded
	}

	filename := s.names.Generate() + uploadExt(originalName)

	url, err := s.files.Save(ctx, filename, contentType, r)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("error storing upload: %w", err)
	}

	log.Info().Str("filename", filename).Str("original", originalName).Msg("file uploaded")
	return models.UploadedFile{URL: url, Filename: filename}, nil
}

// uploadExt returns the lower-cased extension of name, or ".jpg" when it has
// none or it contains anything but letters and digits.
func uploadExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) < 2 || len(ext) > 10 {
		return defaultUploadExt
	}

	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultUploadExt
		}
	}

	return ext
}
