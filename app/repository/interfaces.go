package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MarcusWeller/CampusVoice/app/models"
)

// ComplaintRepository defines the interface for complaint-related database operations
type ComplaintRepository interface {
	Insert(ctx context.Context, complaint *models.Complaint) error
	List(ctx context.Context) ([]models.Complaint, error)
	GetByID(ctx context.Context, id string) (*models.Complaint, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// FeedbackRepository defines the interface for feedback-related database operations
type FeedbackRepository interface {
	Insert(ctx context.Context, feedback *models.Feedback) error
	List(ctx context.Context) ([]models.Feedback, error)
	UpdateVotes(ctx context.Context, id string, helpful, notHelpful int) error
	Count(ctx context.Context) (int64, error)
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// SettingRepository defines the interface for system settings and the
// admin profile record
type SettingRepository interface {
	LoadSettings(ctx context.Context) (*models.AppSettings, error)
	SaveSettings(ctx context.Context, settings *models.AppSettings) error
	LoadAdminProfile(ctx context.Context) (*models.AdminProfile, error)
	SaveAdminProfile(ctx context.Context, profile *models.AdminProfile) error
}

// Repositories holds all repository instances
type Repositories struct {
	Complaint ComplaintRepository
	Feedback  FeedbackRepository
	User      UserRepository
	Setting   SettingRepository
}

// NewRepositories creates all repositories with the given database connection
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Complaint: NewComplaintRepository(db),
		Feedback:  NewFeedbackRepository(db),
		User:      NewUserRepository(db),
		Setting:   NewSettingRepository(db),
	}
}
