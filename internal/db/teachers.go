package db

import (
	"context"

	"github.com/linguanest/lingua-back/internal/models"
)

func ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := DB.WithContext(ctx).Order("name").Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

// RecomputeTeacherRatings sets each teacher's rating to the average rating of
// approved testimonials that name one of the teacher's courses. Teachers with
// no matching testimonials keep their current rating.
func RecomputeTeacherRatings(ctx context.Context) error {
	var teachers []models.Teacher
	if err := DB.WithContext(ctx).Find(&teachers).Error; err != nil {
		return err
	}

	for i := range teachers {
		var titles []string
		err := DB.WithContext(ctx).Model(&models.Course{}).
			Where("teacher_id = ?", teachers[i].ID).
			Pluck("title", &titles).Error
		if err != nil {
			return err
		}
		if len(titles) == 0 {
			continue
		}

		var avg *float64
		err = DB.WithContext(ctx).Model(&models.Testimonial{}).
			Select("avg(rating)").
			Where("is_approved = ? AND course IN ?", true, titles).
			Scan(&avg).Error
		if err != nil {
			return err
		}
		if avg == nil {
			continue
		}

		err = DB.WithContext(ctx).Model(&models.Teacher{}).
			Where("id = ?", teachers[i].ID).
			Update("rating", *avg).Error
		if err != nil {
			return err
		}
	}

	return nil
}
