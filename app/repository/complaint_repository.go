package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MarcusWeller/CampusVoice/app/models"
)

// complaintRepository implements the ComplaintRepository interface
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository instance
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// Insert creates a new complaint in the database
func (r *complaintRepository) Insert(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// List retrieves all complaints ordered by creation time descending
func (r *complaintRepository) List(ctx context.Context) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// GetByID retrieves a complaint by its token
func (r *complaintRepository) GetByID(ctx context.Context, id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&complaint).Error
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// UpdateStatus replaces the status of the matching complaint
func (r *complaintRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).Model(&models.Complaint{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes a complaint by its token
func (r *complaintRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Complaint{}).Error
}

// Count returns the total number of complaints
func (r *complaintRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Complaint{}).Count(&count).Error
	return count, err
}
