package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/models"
	"skillswap/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestUploadService(t *testing.T) (*UploadService, repository.UserRepository, *models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	users := repository.NewUserRepository(db)
	user := &models.User{Name: "Pic", Email: "pic@x.com", Password: "hash"}
	require.NoError(t, users.Create(context.Background(), user))

	svc := NewUploadService(users, &config.Config{UploadDir: t.TempDir()})
	return svc, users, user
}

func TestUploadProfilePicture(t *testing.T) {
	t.Parallel()
	svc, users, user := newTestUploadService(t)
	ctx := context.Background()

	filename, err := svc.UploadProfilePicture(ctx, UploadProfilePictureInput{
		UserID:   user.ID,
		Filename: "avatar.png",
		Content:  []byte("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "avatar.png", filename)

	data, err := os.ReadFile(filepath.Join(svc.UploadDir(), "avatar.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "avatar.png", stored.ProfilePic)
}

func TestUploadProfilePictureSanitizesFilename(t *testing.T) {
	t.Parallel()
	svc, _, user := newTestUploadService(t)

	filename, err := svc.UploadProfilePicture(context.Background(), UploadProfilePictureInput{
		UserID:   user.ID,
		Filename: "../../etc/passwd",
		Content:  []byte("x"),
	})
	require.NoError(t, err)
	assert.Equal(t, "passwd", filename)

	// Nothing escapes the upload dir.
	_, err = os.Stat(filepath.Join(svc.UploadDir(), "passwd"))
	assert.NoError(t, err)
}

func TestUploadProfilePictureOverwritesSameName(t *testing.T) {
	t.Parallel()
	svc, users, first := newTestUploadService(t)
	ctx := context.Background()

	second := &models.User{Name: "Other", Email: "other@x.com", Password: "hash"}
	require.NoError(t, users.Create(ctx, second))

	_, err := svc.UploadProfilePicture(ctx, UploadProfilePictureInput{
		UserID: first.ID, Filename: "pic.png", Content: []byte("first"),
	})
	require.NoError(t, err)

	// Same filename from a different user replaces the earlier file.
	_, err = svc.UploadProfilePicture(ctx, UploadProfilePictureInput{
		UserID: second.ID, Filename: "pic.png", Content: []byte("second"),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(svc.UploadDir(), "pic.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestUploadProfilePictureValidation(t *testing.T) {
	t.Parallel()
	svc, _, user := newTestUploadService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input UploadProfilePictureInput
	}{
		{"zero user id", UploadProfilePictureInput{Filename: "a.png", Content: []byte("x")}},
		{"empty content", UploadProfilePictureInput{UserID: user.ID, Filename: "a.png"}},
		{"filename sanitizes to nothing", UploadProfilePictureInput{UserID: user.ID, Filename: "..", Content: []byte("x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UploadProfilePicture(ctx, tt.input)
			require.Error(t, err)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}
