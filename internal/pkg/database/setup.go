package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/MarcusWeller/CampusVoice/app/models"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var DB *gorm.DB

func SetupDatabase() {
	var err error
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", "campusvoice"),
		env.GetEnv("DB_PASSWORD", "campusvoice"),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", "campusvoice_db"),
	)

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                      dsn,
			DefaultStringSize:        256,
			DisableDatetimePrecision: true,
			DontSupportRenameIndex:   true,
			DontSupportRenameColumn:  true,
		}), &gorm.Config{})
		if err == nil {
			DB.AutoMigrate(
				&models.User{},
				&models.Complaint{},
				&models.Feedback{},
				&models.AdminProfile{},
				&models.Setting{},
			)

			seedDemoUsers()

			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	// The service stays up without a database: the persistence adapter
	// degrades every operation to the local JSON store.
	log.Printf("Giving up on database connection, running on local store only: %v", err)
}

// GetDB returns the shared database handle, nil when the database never
// came up.
func GetDB() *gorm.DB {
	return DB
}

// seedDemoUsers inserts the two demo accounts on first start so the demo
// credential table always resolves against the user directory.
func seedDemoUsers() {
	demo := []struct {
		name     string
		email    string
		password string
		role     string
	}{
		{"Student User", "student@vce.edu.in", "student123", models.ROLE_STUDENT},
		{"Admin User", "admin@vce.edu.in", "admin123", models.ROLE_ADMIN},
	}

	for _, d := range demo {
		var existing models.User
		err := DB.Select("id").Where("email = ?", d.email).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("demo user lookup failed for %s: %v", d.email, err)
			continue
		}

		user, err := models.CreateUser(d.name, d.email, d.password, d.role)
		if err != nil {
			log.Printf("demo user build failed for %s: %v", d.email, err)
			continue
		}
		if err := DB.Create(user).Error; err != nil {
			log.Printf("demo user insert failed for %s: %v", d.email, err)
		}
	}
}
