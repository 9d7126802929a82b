package reports

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kavinak445/technovate-backend/internal/registration"
)

type Handler struct {
	exporter *Exporter
	regSvc   *registration.Service
}

func NewHandler(exporter *Exporter, regSvc *registration.Service) *Handler {
	return &Handler{exporter: exporter, regSvc: regSvc}
}

// ===========================
// 📊 Export Pending Rows - GET /api/registrations/export?format=xlsx|csv|pdf
func (h *Handler) ExportFallback(c *gin.Context) {
	format := c.DefaultQuery("format", FormatExcel)

	rows, err := h.regSvc.FallbackRows(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, registration.ErrFallbackUnavailable) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	data, filename, contentType, err := h.exporter.Export(format, rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, contentType, data)
}

// ===========================
// 🧾 Registration Receipt - POST /api/receipt
func (h *Handler) Receipt(c *gin.Context) {
	var req registration.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	if len(req.Participants) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No participants provided"})
		return
	}

	data, err := BuildReceipt(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	filename := fmt.Sprintf("receipt_%s.pdf", req.RegistrationID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
