package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MarcusWeller/CampusVoice/app/models"
)

// feedbackRepository implements the FeedbackRepository interface
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository instance
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Insert creates a new feedback record in the database
func (r *feedbackRepository) Insert(ctx context.Context, feedback *models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// List retrieves all feedback ordered by creation time descending
func (r *feedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// UpdateVotes replaces both vote counters of the matching feedback record
func (r *feedbackRepository) UpdateVotes(ctx context.Context, id string, helpful, notHelpful int) error {
	return r.db.WithContext(ctx).Model(&models.Feedback{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"helpful":     helpful,
			"not_helpful": notHelpful,
		}).Error
}

// Count returns the total number of feedback records
func (r *feedbackRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Feedback{}).Count(&count).Error
	return count, err
}
