package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/linguanest/lingua-back/internal/db"
	"github.com/linguanest/lingua-back/internal/models"
)

// TestimonialRequest is the public testimonial submission payload.
// Submissions start unapproved and only show up on the site once an
// administrator approves them.
type TestimonialRequest struct {
	StudentName string `json:"studentName" binding:"required"`
	Course      string `json:"course" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Comment     string `json:"comment" binding:"required"`
}

// ListTestimonials godoc
// @Summary      List approved testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}  models.Testimonial
// @Router       /testimonials [get]
func ListTestimonials(c *gin.Context) {
	testimonials, err := db.ListApprovedTestimonials(c.Request.Context())
	if err != nil {
		logger.Error("failed to list testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// CreateTestimonial godoc
// @Summary      Submit a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        body  body  TestimonialRequest  true  "Testimonial"
// @Success      201  {object}  models.Testimonial
// @Failure      400  {object}  map[string]string
// @Router       /testimonials [post]
func CreateTestimonial(c *gin.Context) {
	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	testimonial := &models.Testimonial{
		StudentName: req.StudentName,
		Course:      req.Course,
		Rating:      req.Rating,
		Comment:     req.Comment,
		Date:        time.Now().Format("2006-01-02"),
	}
	if err := db.CreateTestimonial(c.Request.Context(), testimonial); err != nil {
		logger.Error("failed to create testimonial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create testimonial"})
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

// ListPendingTestimonials godoc
// @Summary      List unapproved testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}  models.Testimonial
// @Security     BearerAuth
// @Router       /testimonials/pending [get]
func ListPendingTestimonials(c *gin.Context) {
	testimonials, err := db.ListPendingTestimonials(c.Request.Context())
	if err != nil {
		logger.Error("failed to list pending testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// ApproveTestimonial godoc
// @Summary      Approve a testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id  path  string  true  "Testimonial ID"
// @Success      200  {object}  models.Testimonial
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /testimonials/{id}/approve [patch]
func ApproveTestimonial(c *gin.Context) {
	testimonial, err := db.ApproveTestimonial(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		logger.Error("failed to approve testimonial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve testimonial"})
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

// DeleteTestimonial godoc
// @Summary      Delete a testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id  path  string  true  "Testimonial ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /testimonials/{id} [delete]
func DeleteTestimonial(c *gin.Context) {
	if err := db.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		logger.Error("failed to delete testimonial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}
