// Package service contains application services that sit between HTTP handlers
// and the repositories.
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"skillswap/internal/config"
	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/validation"
)

const (
	// DefaultUploadDir is used when no UPLOAD_DIR is configured.
	DefaultUploadDir = "/tmp/skillswap/uploads"
)

// UploadProfilePictureInput carries an uploaded profile picture.
type UploadProfilePictureInput struct {
	UserID   uint
	Filename string
	Content  []byte
}

// UploadService stores profile pictures on the local filesystem and records
// the stored filename on the user row.
type UploadService struct {
	users     repository.UserRepository
	uploadDir string
}

// NewUploadService returns an UploadService writing under the configured upload dir.
func NewUploadService(users repository.UserRepository, cfg *config.Config) *UploadService {
	uploadDir := DefaultUploadDir
	if cfg != nil && cfg.UploadDir != "" {
		uploadDir = cfg.UploadDir
	}
	return &UploadService{users: users, uploadDir: uploadDir}
}

// UploadDir returns the directory uploads are written to.
func (s *UploadService) UploadDir() string {
	return s.uploadDir
}

// UploadProfilePicture sanitizes the filename, writes the file, and records the
// filename on the user row. The same filename from two users overwrites the
// earlier file.
func (s *UploadService) UploadProfilePicture(ctx context.Context, in UploadProfilePictureInput) (string, error) {
	if in.UserID == 0 {
		return "", models.NewValidationError("Invalid user")
	}
	if len(in.Content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}

	filename := validation.SanitizeFilename(in.Filename)
	if filename == "" {
		return "", models.NewValidationError("Invalid filename")
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", models.NewInternalError(fmt.Errorf("create upload dir: %w", err))
	}

	path := filepath.Join(s.uploadDir, filename)
	if err := os.WriteFile(path, in.Content, 0o644); err != nil {
		return "", models.NewInternalError(fmt.Errorf("write upload: %w", err))
	}

	if err := s.users.SetProfilePic(ctx, in.UserID, filename); err != nil {
		return "", err
	}

	return filename, nil
}
