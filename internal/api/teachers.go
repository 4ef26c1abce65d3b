package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/linguanest/lingua-back/internal/db"
)

// ListTeachers godoc
// @Summary      List teachers
// @Tags         teachers
// @Produce      json
// @Success      200  {array}  models.Teacher
// @Router       /teachers [get]
func ListTeachers(c *gin.Context) {
	teachers, err := db.ListTeachers(c.Request.Context())
	if err != nil {
		logger.Error("failed to list teachers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teachers"})
		return
	}
	c.JSON(http.StatusOK, teachers)
}
