package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// AdminProfile is the single contact record shown on the admin profile page.
// The table never holds more than one row.
type AdminProfile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(150)" json:"name" validate:"required,max=150"`
	Email        string    `gorm:"type:varchar(200)" json:"email" validate:"required,email"`
	Phone        string    `gorm:"type:varchar(30)" json:"phone" validate:"max=30"`
	Department   string    `gorm:"type:varchar(100)" json:"department" validate:"max=100"`
	ProfileImage string    `gorm:"type:mediumtext" json:"profile_image,omitempty"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *AdminProfile) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// DefaultAdminProfile returns the profile used until an admin edits it.
func DefaultAdminProfile() AdminProfile {
	return AdminProfile{
		Name:       "Admin User",
		Email:      "admin@vce.edu.in",
		Phone:      "+91 8734 290 290",
		Department: "Administration",
	}
}
