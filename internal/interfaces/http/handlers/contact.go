// internal/interfaces/http/handlers/contact.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/snackshop-backend/internal/config"
	"github.com/your-org/snackshop-backend/internal/domain/notification"
	"gorm.io/gorm"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	db     *gorm.DB
	config *config.Config
}

// NewContactHandler creates a new contact handler
func NewContactHandler(db *gorm.DB, cfg *config.Config) *ContactHandler {
	return &ContactHandler{db: db, config: cfg}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Submit handles POST /contact. The message is queued for the
// operator and delivered by the notification dispatcher.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := notification.NewContactMessage(
		h.config.Notification.OperatorEmail, req.Name, req.Email, req.Message)
	if err := notification.Enqueue(h.db, msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message received"})
}
