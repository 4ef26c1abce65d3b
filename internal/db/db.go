package db

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/linguanest/lingua-back/internal/models"
)

var DB *gorm.DB

// Domain errors surfaced by the query layer. Handlers map these to
// HTTP statuses.
var (
	ErrCourseFull        = errors.New("course has no available slots")
	ErrCourseInactive    = errors.New("course is not active")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

func InitDB(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	err = DB.AutoMigrate(
		&models.Course{},
		&models.Booking{},
		&models.Testimonial{},
		&models.ContactMessage{},
		&models.Teacher{},
		&models.AdminUser{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	return nil
}

func PingDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
