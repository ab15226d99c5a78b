package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines persistence operations for skill profiles and the
// public directory.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.SkillProfile) error
	GetByUserID(ctx context.Context, userID uint) (*models.SkillProfile, error)
	Browse(ctx context.Context, query string) ([]models.DirectoryEntry, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert writes the profile as a single atomic statement keyed on the unique
// user_id index, so concurrent saves for the same user cannot create a second
// row.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.SkillProfile) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"skill_offered", "skill_wanted", "availability", "is_public", "location", "updated_at",
			}),
		}).
		Create(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByUserID returns the user's profile, or nil when none exists yet. A
// missing profile is a valid state, not an error.
func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.SkillProfile, error) {
	var profile models.SkillProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// Browse returns public profiles joined with owner names, ordered by profile
// id for determinism. A non-empty query filters skill_offered by
// case-sensitive substring match; banned owners are not excluded.
func (r *profileRepository) Browse(ctx context.Context, query string) ([]models.DirectoryEntry, error) {
	tx := r.db.WithContext(ctx).
		Table("skill_profiles").
		Select("skill_profiles.id AS profile_id, skill_profiles.user_id, users.name AS owner_name, "+
			"skill_profiles.skill_offered, skill_profiles.skill_wanted, "+
			"skill_profiles.availability, skill_profiles.location").
		Joins("JOIN users ON users.id = skill_profiles.user_id").
		Where("skill_profiles.is_public = ?", true)

	if query != "" {
		tx = tx.Where("skill_profiles.skill_offered LIKE ?", "%"+query+"%")
	}

	var entries []models.DirectoryEntry
	if err := tx.Order("skill_profiles.id").Scan(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}
