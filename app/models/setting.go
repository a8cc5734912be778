package models

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Setting represents a single system setting row
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:255;not null;uniqueIndex" json:"key" validate:"required,min=1,max=255"`
	Value     string    `gorm:"type:text" json:"value"`
	Type      string    `gorm:"column:setting_type;size:50;not null" json:"type" validate:"required"` // string, boolean, integer
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppSettings represents the system settings structure
type AppSettings struct {
	SiteName           string `json:"site_name" validate:"required,min=1,max=255"`
	AdminEmail         string `json:"admin_email" validate:"required,email"`
	ContactPhone       string `json:"contact_phone" validate:"max=30"`
	Address            string `json:"address" validate:"max=255"`
	Timezone           string `json:"timezone" validate:"max=100"`
	Language           string `json:"language" validate:"max=50"`
	EmailNotifications bool   `json:"email_notifications"`
	SMSNotifications   bool   `json:"sms_notifications"`
	WeeklyReports      bool   `json:"weekly_reports"`
	AllowRegistration  bool   `json:"allow_registration"`
	SessionTimeout     int    `json:"session_timeout" validate:"min=1,max=1440"`
	LoginAttempts      int    `json:"login_attempts" validate:"min=1,max=100"`
}

// Global settings instance
var (
	appSettings *AppSettings
	settingsMu  sync.RWMutex
)

// GetAppSettings returns a copy of the current system settings
func GetAppSettings() *AppSettings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	if appSettings == nil {
		return DefaultSettings()
	}
	copied := *appSettings
	return &copied
}

// SetAppSettings replaces the in-memory settings instance
func SetAppSettings(settings *AppSettings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	appSettings = settings
}

// DefaultSettings returns the settings used until an admin edits them.
func DefaultSettings() *AppSettings {
	return &AppSettings{
		SiteName:           "VCE Complaint Management",
		AdminEmail:         "admin@vce.edu.in",
		ContactPhone:       "+91 8734 290 290",
		Address:            "Thimmapur, Karimnagar",
		Timezone:           "Asia/Kolkata",
		Language:           "English",
		EmailNotifications: true,
		SMSNotifications:   false,
		WeeklyReports:      true,
		AllowRegistration:  false,
		SessionTimeout:     30,
		LoginAttempts:      5,
	}
}

// Validate validates the settings
func (s *AppSettings) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// ToJSON converts settings to JSON
func (s *AppSettings) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// FromJSON loads settings from JSON
func (s *AppSettings) FromJSON(data []byte) error {
	return json.Unmarshal(data, s)
}
