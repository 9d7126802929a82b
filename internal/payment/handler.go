package payment

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

// ===========================
// 💳 UPI Payment Intent - GET /api/payment/intent
func (h *Handler) Intent(c *gin.Context) {
	passID := c.Query("passType")
	if passID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "passType query parameter required"})
		return
	}

	resp, err := h.Service.Intent(passID, c.Query("registrationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ===========================
// 💳 Razorpay Order - POST /api/payment/order
func (h *Handler) CreateOrder(c *gin.Context) {
	if !h.cfg.RazorpayConfigured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "online payment not enabled for this deployment",
		})
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}

	resp, err := h.Service.CreateOrder(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
