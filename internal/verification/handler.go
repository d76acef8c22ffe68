// internal/verification/handler.go
package verification

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the verification relay over HTTP
type Handler struct {
	service *Service
}

// NewHandler creates a verification handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the relay endpoints
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/send-verification", h.SendVerification)
		api.POST("/verify-code", h.VerifyCode)
	}
}

type sendVerificationRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type verifyCodeRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

// SendVerification handles POST /api/send-verification
func (h *Handler) SendVerification(c *gin.Context) {
	var req sendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "phone number is required",
		})
		return
	}

	if err := h.service.SendCode(c.Request.Context(), req.PhoneNumber); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "failed to send verification code",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// VerifyCode handles POST /api/verify-code
func (h *Handler) VerifyCode(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "phone number and code are required",
		})
		return
	}

	if err := h.service.VerifyCode(req.PhoneNumber, req.Code); err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, ErrCodeNotFound) &&
			!errors.Is(err, ErrCodeExpired) &&
			!errors.Is(err, ErrCodeMismatch) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
