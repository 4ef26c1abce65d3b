package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/linguanest/lingua-back/internal/config"
	"github.com/linguanest/lingua-back/internal/db"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler godoc
// @Summary      Admin login
// @Description  Exchanges username and password for a bearer token and the admin user record
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  LoginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func LoginHandler(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		admin, err := db.GetAdminByUsername(c.Request.Context(), req.Username)
		if err != nil || !CheckPassword(admin.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		token, err := IssueToken(cfg, admin)
		if err != nil {
			logger.Error("failed to issue token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		logger.Info("admin logged in", zap.String("username", admin.Username))
		c.JSON(http.StatusOK, gin.H{"token": token, "user": admin})
	}
}

// MeHandler godoc
// @Summary      Current admin user
// @Description  Resolves the admin user for the presented bearer token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.AdminUser
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /auth/me [get]
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")

		admin, err := db.GetAdminByUsername(c.Request.Context(), username)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, admin)
	}
}
