package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/linguanest/lingua-back/internal/db"
	"github.com/linguanest/lingua-back/internal/models"
)

// CourseRequest is the payload for creating or updating a course.
type CourseRequest struct {
	Title       string   `json:"title" binding:"required"`
	Language    string   `json:"language" binding:"required,courselanguage"`
	Level       string   `json:"level" binding:"required,courselevel"`
	Description string   `json:"description"`
	Duration    int      `json:"duration" binding:"required,gt=0"`
	Price       int      `json:"price" binding:"gte=0"`
	Schedule    []string `json:"schedule" binding:"dive,weekday"`
	MaxStudents int      `json:"maxStudents" binding:"required,gt=0"`
	IsActive    *bool    `json:"isActive"`
	TeacherID   *string  `json:"teacherId"`
}

func (r *CourseRequest) toModel() *models.Course {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &models.Course{
		Title:       r.Title,
		Language:    r.Language,
		Level:       r.Level,
		Description: r.Description,
		Duration:    r.Duration,
		Price:       r.Price,
		Schedule:    pq.StringArray(r.Schedule),
		MaxStudents: r.MaxStudents,
		IsActive:    active,
		TeacherID:   r.TeacherID,
	}
}

// ListCourses godoc
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Success      200  {array}  models.Course
// @Router       /courses [get]
func ListCourses(c *gin.Context) {
	courses, err := db.ListCourses(c.Request.Context())
	if err != nil {
		logger.Error("failed to list courses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourse godoc
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id  path  string  true  "Course ID"
// @Success      200  {object}  models.Course
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [get]
func GetCourse(c *gin.Context) {
	course, err := db.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		logger.Error("failed to fetch course", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch course"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// CreateCourse godoc
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        body  body  CourseRequest  true  "Course"
// @Success      201  {object}  models.Course
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /courses [post]
func CreateCourse(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	course := req.toModel()
	if err := db.CreateCourse(c.Request.Context(), course); err != nil {
		logger.Error("failed to create course", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		return
	}
	c.JSON(http.StatusCreated, course)
}

// UpdateCourse godoc
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "Course ID"
// @Param        body  body  CourseRequest  true  "Course"
// @Success      200  {object}  models.Course
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /courses/{id} [put]
func UpdateCourse(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	course, err := db.UpdateCourse(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		logger.Error("failed to update course", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// DeleteCourse godoc
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Param        id  path  string  true  "Course ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /courses/{id} [delete]
func DeleteCourse(c *gin.Context) {
	if err := db.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		logger.Error("failed to delete course", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}
