package repository

import (
	"context"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// FeedbackRepository defines persistence operations for feedback rows.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	List(ctx context.Context) ([]models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository returns a new FeedbackRepository implementation.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create inserts the feedback row unconditionally. Neither the swap id nor the
// rating range is validated.
func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	if err := r.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *feedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	if err := r.db.WithContext(ctx).Order("id").Find(&feedbacks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return feedbacks, nil
}
