package repository

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Alice", Email: "a@x.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice", got.Name)
	assert.False(t, got.IsBanned)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Email, byID.Email)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{Name: "Alice", Email: "dup@x.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.User{Name: "Other Alice", Email: "dup@x.com", Password: "hash2"}
	err := repo.Create(ctx, second)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "DUPLICATE_EMAIL", appErr.Code)

	// First user remains intact.
	got, err := repo.GetByEmail(ctx, "dup@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func TestUserRepository_GetByEmailMissing(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	got, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_GetByIDMissing(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepository_SetBannedAndRole(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Bob", Email: "b@x.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.SetBanned(ctx, user.ID, true))
	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsBanned)

	require.NoError(t, repo.SetRole(ctx, user.ID, models.RoleAdmin))
	got, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin())
}

func TestUserRepository_SetProfilePic(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Cara", Email: "c@x.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.SetProfilePic(ctx, user.ID, "avatar.png"))
	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "avatar.png", got.ProfilePic)
}

func TestUserRepository_List(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, email := range []string{"l1@x.com", "l2@x.com", "l3@x.com"} {
		require.NoError(t, repo.Create(ctx, &models.User{Name: "U", Email: email, Password: "hash"}))
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, "l1@x.com", users[0].Email)
}
