package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/linguanest/lingua-back/internal/db"
	"github.com/linguanest/lingua-back/internal/models"
)

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SendContactMessage godoc
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  ContactRequest  true  "Message"
// @Success      201  {object}  models.ContactMessage
// @Failure      400  {object}  map[string]string
// @Router       /contact [post]
func SendContactMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := db.CreateContactMessage(c.Request.Context(), message); err != nil {
		logger.Error("failed to save contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, message)
}

// ListMessages godoc
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Success      200  {array}  models.ContactMessage
// @Security     BearerAuth
// @Router       /contact/messages [get]
func ListMessages(c *gin.Context) {
	messages, err := db.ListContactMessages(c.Request.Context())
	if err != nil {
		logger.Error("failed to list messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// MarkMessageRead godoc
// @Summary      Mark a contact message as read
// @Tags         contact
// @Produce      json
// @Param        id  path  string  true  "Message ID"
// @Success      200  {object}  models.ContactMessage
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /contact/messages/{id}/read [patch]
func MarkMessageRead(c *gin.Context) {
	message, err := db.MarkMessageRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		logger.Error("failed to mark message read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}
	c.JSON(http.StatusOK, message)
}

// DeleteMessage godoc
// @Summary      Delete a contact message
// @Tags         contact
// @Produce      json
// @Param        id  path  string  true  "Message ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /contact/messages/{id} [delete]
func DeleteMessage(c *gin.Context) {
	if err := db.DeleteContactMessage(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		logger.Error("failed to delete message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
