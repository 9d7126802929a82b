package registration

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kavinak445/technovate-backend/config"
	"github.com/kavinak445/technovate-backend/middleware"
)

type Handler struct {
	Service *Service
	cfg     *config.Config
}

func NewHandler(s *Service, cfg *config.Config) *Handler {
	return &Handler{Service: s, cfg: cfg}
}

// ===========================
// 📝 Submit Registration - POST /api/submit-to-sheets
func (h *Handler) SubmitToSheets(c *gin.Context) {
	if !h.cfg.SheetsConfigured() {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Google Script URL not configured",
		})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	if len(req.Participants) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No participants provided"})
		return
	}

	ip := middleware.GetIPFromContext(c)
	resp := h.Service.Submit(c.Request.Context(), req, ip)
	c.JSON(http.StatusOK, resp)
}

// ===========================
// 📥 List Fallback Rows - GET /api/registrations/fallback
func (h *Handler) ListFallback(c *gin.Context) {
	rows, err := h.Service.FallbackRows(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrFallbackUnavailable) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(rows), "rows": rows})
}

// ===========================
// 🔄 Retry Fallback Rows - POST /api/registrations/fallback/sync
func (h *Handler) SyncFallback(c *gin.Context) {
	if !h.cfg.SheetsConfigured() {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Google Script URL not configured",
		})
		return
	}

	res, err := h.Service.SyncFallback(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrFallbackUnavailable) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"attempted": res.Attempted,
		"synced":    res.Synced,
		"remaining": res.Remaining,
	})
}
