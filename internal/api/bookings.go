package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/linguanest/lingua-back/internal/db"
	"github.com/linguanest/lingua-back/internal/excel"
	"github.com/linguanest/lingua-back/internal/models"
)

// BookingRequest is the public booking form payload.
type BookingRequest struct {
	StudentName  string `json:"studentName" binding:"required"`
	StudentEmail string `json:"studentEmail" binding:"required,email"`
	StudentPhone string `json:"studentPhone" binding:"required"`
	CourseID     string `json:"courseId" binding:"required"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	Time         string `json:"time" binding:"required,datetime=15:04"`
	Message      string `json:"message"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// CreateBooking godoc
// @Summary      Create a booking
// @Description  Submits a booking request for a course with available slots
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  BookingRequest  true  "Booking"
// @Success      201  {object}  models.Booking
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /bookings [post]
func CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	booking := &models.Booking{
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
		StudentPhone: req.StudentPhone,
		CourseID:     req.CourseID,
		Date:         req.Date,
		Time:         req.Time,
		Message:      req.Message,
		Status:       models.BookingPending,
	}

	err := db.CreateBooking(c.Request.Context(), booking)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
	case errors.Is(err, db.ErrCourseInactive), errors.Is(err, db.ErrCourseFull):
		c.JSON(http.StatusConflict, gin.H{"error": "Course is not open for booking"})
	case err != nil:
		logger.Error("failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
	default:
		logger.Info("booking created",
			zap.String("id", booking.ID),
			zap.String("course", booking.CourseTitle))
		c.JSON(http.StatusCreated, booking)
	}
}

// ListBookings godoc
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}  models.Booking
// @Security     BearerAuth
// @Router       /bookings [get]
func ListBookings(c *gin.Context) {
	bookings, err := db.ListBookings(c.Request.Context())
	if err != nil {
		logger.Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus godoc
// @Summary      Update booking status
// @Description  Applies a status transition. The new status comes from the JSON body or the "status" query parameter.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id      path   string  true   "Booking ID"
// @Param        status  query  string  false  "New status"
// @Success      200  {object}  models.Booking
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Security     BearerAuth
// @Router       /bookings/{id}/status [patch]
func UpdateBookingStatus(c *gin.Context) {
	var req UpdateBookingStatusRequest
	_ = c.ShouldBindJSON(&req)

	status := req.Status
	if status == "" {
		status = c.Query("status")
	}
	if !models.ValidBookingStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	booking, err := db.UpdateBookingStatus(c.Request.Context(), c.Param("id"), status)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, db.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid status transition"})
	case errors.Is(err, db.ErrCourseFull):
		c.JSON(http.StatusConflict, gin.H{"error": "Course has no available slots"})
	case err != nil:
		logger.Error("failed to update booking status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
	default:
		c.JSON(http.StatusOK, booking)
	}
}

// ExportBookings godoc
// @Summary      Export bookings to Excel
// @Tags         bookings
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Security     BearerAuth
// @Router       /bookings/export [get]
func ExportBookings(c *gin.Context) {
	bookings, err := db.ListBookings(c.Request.Context())
	if err != nil {
		logger.Error("failed to list bookings for export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	f, err := excel.BuildBookingsWorkbook(bookings)
	if err != nil {
		logger.Error("failed to build export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		logger.Error("failed to stream export", zap.Error(err))
	}
}
