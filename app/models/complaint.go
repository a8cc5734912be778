package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusClosed     = "Closed"
)

// Statuses lists every complaint status. Transitions are deliberately
// unrestricted: any status may follow any other, and Pending is the only
// status a complaint is ever created with.
var Statuses = []string{StatusPending, StatusInProgress, StatusResolved, StatusClosed}

// IssueTypes is the fixed category enumeration for complaints.
var IssueTypes = []string{
	"Infrastructure Problems",
	"Hostel & Food Complaints",
	"Academic Concerns",
	"Bullying/Ragging Reports",
	"Suggestion Box",
	"Other",
}

type Complaint struct {
	ID            string    `gorm:"primaryKey;type:varchar(40)" json:"id"`
	Name          string    `gorm:"type:varchar(150)" json:"name,omitempty" validate:"max=150"`
	RollNumber    string    `gorm:"type:varchar(50)" json:"roll_number,omitempty" validate:"max=50"`
	IssueType     string    `gorm:"type:varchar(50);not null;index" json:"issue_type" validate:"required"`
	Subject       string    `gorm:"type:varchar(255);not null" json:"subject" validate:"required,max=255"`
	Description   string    `gorm:"type:text;not null" json:"description" validate:"required,min=10"`
	Status        string    `gorm:"type:varchar(20);default:'Pending';index" json:"status"`
	ProfileImage  string    `gorm:"type:mediumtext" json:"profile_image,omitempty"`
	DateSubmitted string    `gorm:"type:varchar(40)" json:"date_submitted"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Complaint) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	if !IsValidIssueType(c.IssueType) {
		return fmt.Errorf("unknown issue type %q", c.IssueType)
	}
	return nil
}

func IsValidIssueType(issueType string) bool {
	for _, t := range IssueTypes {
		if t == issueType {
			return true
		}
	}
	return false
}

func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// NewComplaintID generates a unique complaint token, e.g. "CMP-1717171717171-a3f9c1".
func NewComplaintID() string {
	return newToken("CMP")
}

func newToken(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
