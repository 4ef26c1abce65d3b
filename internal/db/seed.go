package db

import (
	"context"

	"github.com/lib/pq"

	"github.com/linguanest/lingua-back/internal/models"
)

// SeedTeachers loads the default teacher roster on an empty table. Teachers
// are read-mostly reference data edited directly in the database afterwards.
func SeedTeachers(ctx context.Context) error {
	var count int64
	if err := DB.WithContext(ctx).Model(&models.Teacher{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	teachers := []models.Teacher{
		{
			Name:            "Elif Yilmaz",
			Email:           "elif@linguanest.local",
			Phone:           "+90 532 000 0001",
			Bio:             "Native Turkish speaker with a decade of one-on-one tutoring experience.",
			Specializations: pq.StringArray{"Turkish", "Conversation", "Exam preparation"},
			Experience:      10,
			Rating:          4.8,
			ProfileImage:    "/images/teachers/elif.jpg",
		},
		{
			Name:            "James Carter",
			Email:           "james@linguanest.local",
			Phone:           "+44 7700 900002",
			Bio:             "CELTA-certified English tutor focused on business English and IELTS.",
			Specializations: pq.StringArray{"English", "Business English", "IELTS"},
			Experience:      7,
			Rating:          4.6,
			ProfileImage:    "/images/teachers/james.jpg",
		},
	}

	return DB.WithContext(ctx).Create(&teachers).Error
}
