package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kavinak445/technovate-backend/config"
)

type Handler struct {
	Service *Service
	cfg     *config.Config
}

func NewHandler(s *Service, cfg *config.Config) *Handler {
	return &Handler{Service: s, cfg: cfg}
}

func (h *Handler) requireEmailConfig(c *gin.Context) bool {
	if h.cfg.EmailConfigured() {
		return true
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "Email credentials not configured",
	})
	return false
}

// ===========================
// 📧 Bulk Confirmation Emails - POST /api/send-emails
func (h *Handler) SendBulkEmails(c *gin.Context) {
	if !h.requireEmailConfig(c) {
		return
	}

	var req BulkEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	if len(req.Recipients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No recipients provided"})
		return
	}

	c.JSON(http.StatusOK, h.Service.SendConfirmations(c.Request.Context(), req))
}

// ===========================
// 📧 Single Email - POST /api/send-email
func (h *Handler) SendEmail(c *gin.Context) {
	if !h.requireEmailConfig(c) {
		return
	}

	var req SingleEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.Service.SendSingle(c.Request.Context(), req))
}

// ===========================
// ⏳ Verification Pending Emails - POST /api/send-verification-pending
func (h *Handler) SendVerificationPending(c *gin.Context) {
	if !h.requireEmailConfig(c) {
		return
	}

	var req VerificationPendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	if len(req.Recipients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No recipients provided"})
		return
	}

	c.JSON(http.StatusOK, h.Service.SendVerificationPending(c.Request.Context(), req))
}
