package db

import (
	"context"

	"github.com/linguanest/lingua-back/internal/models"
)

func ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := DB.WithContext(ctx).Order("created_at").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func GetCourse(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := DB.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func CreateCourse(ctx context.Context, c *models.Course) error {
	if err := DB.WithContext(ctx).Create(c).Error; err != nil {
		return err
	}
	c.ComputeAvailableSlots()
	return nil
}

func UpdateCourse(ctx context.Context, id string, updates *models.Course) (*models.Course, error) {
	var course models.Course
	if err := DB.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}

	updates.ID = course.ID
	updates.CurrentStudents = course.CurrentStudents
	updates.CreatedAt = course.CreatedAt
	if err := DB.WithContext(ctx).Save(updates).Error; err != nil {
		return nil, err
	}
	updates.ComputeAvailableSlots()
	return updates, nil
}

func DeleteCourse(ctx context.Context, id string) error {
	var course models.Course
	if err := DB.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return err
	}
	return DB.WithContext(ctx).Delete(&course).Error
}
