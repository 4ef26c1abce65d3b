package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/linguanest/lingua-back/internal/models"
)

// CreateBooking stores a new pending booking after checking that the
// referenced course can still accept students.
func CreateBooking(ctx context.Context, b *models.Booking) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, "id = ?", b.CourseID).Error; err != nil {
			return err
		}
		if !course.IsActive {
			return ErrCourseInactive
		}
		if !course.Bookable() {
			return ErrCourseFull
		}

		if err := tx.Create(b).Error; err != nil {
			return err
		}

		b.CourseTitle = course.Title
		b.CourseLanguage = course.Language
		b.CourseLevel = course.Level
		return nil
	})
}

func ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := DB.WithContext(ctx).
		Preload("Course").
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := DB.WithContext(ctx).Preload("Course").First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus applies a transition-checked status change. Confirming
// a booking takes a course slot; cancelling a confirmed booking returns it.
func UpdateBookingStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	var booking models.Booking

	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Course").First(&booking, "id = ?", id).Error; err != nil {
			return err
		}

		if !models.CanTransitionBooking(booking.Status, status) {
			return ErrInvalidTransition
		}

		var course models.Course
		if err := tx.First(&course, "id = ?", booking.CourseID).Error; err != nil {
			return err
		}

		switch {
		case status == models.BookingConfirmed:
			if !course.Bookable() {
				return ErrCourseFull
			}
			course.CurrentStudents++
		case status == models.BookingCancelled && booking.Status == models.BookingConfirmed:
			if course.CurrentStudents > 0 {
				course.CurrentStudents--
			}
		}

		if err := tx.Model(&models.Course{}).Where("id = ?", course.ID).
			Update("current_students", course.CurrentStudents).Error; err != nil {
			return err
		}

		booking.Status = status
		return tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// ExpireStalePendingBookings cancels pending bookings older than maxAge.
// Returns the number of bookings cancelled.
func ExpireStalePendingBookings(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)

	var stale []models.Booking
	err := DB.WithContext(ctx).
		Where("status = ? AND created_at < ?", models.BookingPending, cutoff).
		Find(&stale).Error
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, b := range stale {
		if _, err := UpdateBookingStatus(ctx, b.ID, models.BookingCancelled); err != nil {
			return cancelled, err
		}
		cancelled++
	}
	return cancelled, nil
}
