package db

import (
	"context"

	"github.com/linguanest/lingua-back/internal/models"
)

func ListApprovedTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := DB.WithContext(ctx).
		Where("is_approved = ?", true).
		Order("date desc").
		Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

func ListPendingTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := DB.WithContext(ctx).
		Where("is_approved = ?", false).
		Order("date desc").
		Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

func CreateTestimonial(ctx context.Context, t *models.Testimonial) error {
	t.IsApproved = false
	return DB.WithContext(ctx).Create(t).Error
}

func ApproveTestimonial(ctx context.Context, id string) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := DB.WithContext(ctx).First(&testimonial, "id = ?", id).Error; err != nil {
		return nil, err
	}

	testimonial.IsApproved = true
	if err := DB.WithContext(ctx).Model(&testimonial).Update("is_approved", true).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func DeleteTestimonial(ctx context.Context, id string) error {
	var testimonial models.Testimonial
	if err := DB.WithContext(ctx).First(&testimonial, "id = ?", id).Error; err != nil {
		return err
	}
	return DB.WithContext(ctx).Delete(&testimonial).Error
}
