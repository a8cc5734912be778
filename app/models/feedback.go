package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Feedback is a rating plus comment attached to a resolved complaint.
// Records are created once and only the vote counters change afterwards;
// there is no delete operation for feedback.
type Feedback struct {
	ID          string    `gorm:"primaryKey;type:varchar(40)" json:"id"`
	ComplaintID string    `gorm:"type:varchar(40);not null;index" json:"complaint_id" validate:"required"`
	Rating      int       `gorm:"not null" json:"rating" validate:"required,min=1,max=5"`
	Comment     string    `gorm:"type:text;not null" json:"comment" validate:"required"`
	SubmittedBy string    `gorm:"type:varchar(150);default:'Anonymous'" json:"submitted_by"`
	Helpful     int       `gorm:"default:0" json:"helpful"`
	NotHelpful  int       `gorm:"default:0" json:"not_helpful"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (f *Feedback) Validate() error {
	v := validator.New()
	return v.Struct(f)
}

// NewFeedbackID generates a unique feedback token, e.g. "FB-1717171717171-b8e2d4".
func NewFeedbackID() string {
	return newToken("FB")
}
