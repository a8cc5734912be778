package repository

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/MarcusWeller/CampusVoice/app/models"
)

// settingRepository implements the SettingRepository interface
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository instance
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// LoadSettings reads all setting rows and applies them over the defaults.
func (r *settingRepository) LoadSettings(ctx context.Context) (*models.AppSettings, error) {
	var rows []models.Setting
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	settings := models.DefaultSettings()
	for _, row := range rows {
		applySetting(settings, row.Key, row.Value)
	}
	return settings, nil
}

// SaveSettings upserts one row per setting key.
func (r *settingRepository) SaveSettings(ctx context.Context, settings *models.AppSettings) error {
	for key, value := range settingsToMap(settings) {
		var row models.Setting
		err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&row).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = models.Setting{
				Key:   key,
				Value: value,
				Type:  settingType(key),
			}
			if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		row.Value = value
		if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// LoadAdminProfile reads the single profile row, creating the default row
// on first access.
func (r *settingRepository) LoadAdminProfile(ctx context.Context) (*models.AdminProfile, error) {
	var profile models.AdminProfile
	err := r.db.WithContext(ctx).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.DefaultAdminProfile()
		if err := r.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveAdminProfile replaces the single profile row.
func (r *settingRepository) SaveAdminProfile(ctx context.Context, profile *models.AdminProfile) error {
	var existing models.AdminProfile
	err := r.db.WithContext(ctx).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(profile).Error
	}
	if err != nil {
		return err
	}
	profile.ID = existing.ID
	return r.db.WithContext(ctx).Save(profile).Error
}

func settingsToMap(s *models.AppSettings) map[string]string {
	return map[string]string{
		"site_name":           s.SiteName,
		"admin_email":         s.AdminEmail,
		"contact_phone":       s.ContactPhone,
		"address":             s.Address,
		"timezone":            s.Timezone,
		"language":            s.Language,
		"email_notifications": strconv.FormatBool(s.EmailNotifications),
		"sms_notifications":   strconv.FormatBool(s.SMSNotifications),
		"weekly_reports":      strconv.FormatBool(s.WeeklyReports),
		"allow_registration":  strconv.FormatBool(s.AllowRegistration),
		"session_timeout":     strconv.Itoa(s.SessionTimeout),
		"login_attempts":      strconv.Itoa(s.LoginAttempts),
	}
}

func applySetting(s *models.AppSettings, key, value string) {
	switch key {
	case "site_name":
		s.SiteName = value
	case "admin_email":
		s.AdminEmail = value
	case "contact_phone":
		s.ContactPhone = value
	case "address":
		s.Address = value
	case "timezone":
		s.Timezone = value
	case "language":
		s.Language = value
	case "email_notifications":
		s.EmailNotifications = value == "true"
	case "sms_notifications":
		s.SMSNotifications = value == "true"
	case "weekly_reports":
		s.WeeklyReports = value == "true"
	case "allow_registration":
		s.AllowRegistration = value == "true"
	case "session_timeout":
		if n, err := strconv.Atoi(value); err == nil {
			s.SessionTimeout = n
		}
	case "login_attempts":
		if n, err := strconv.Atoi(value); err == nil {
			s.LoginAttempts = n
		}
	}
}

// settingType returns the storage type of a setting based on its key
func settingType(key string) string {
	switch key {
	case "email_notifications", "sms_notifications", "weekly_reports", "allow_registration":
		return "boolean"
	case "session_timeout", "login_attempts":
		return "integer"
	default:
		return "string"
	}
}
