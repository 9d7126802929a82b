package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kavinak445/technovate-backend/config"
	"github.com/kavinak445/technovate-backend/internal/auditlog"
	"github.com/kavinak445/technovate-backend/internal/events"
	"github.com/kavinak445/technovate-backend/internal/notification"
	"github.com/kavinak445/technovate-backend/internal/payment"
	"github.com/kavinak445/technovate-backend/internal/registration"
	"github.com/kavinak445/technovate-backend/internal/reports"
	"github.com/kavinak445/technovate-backend/middleware"
)

// Deps carries the shared infrastructure main wires up.
type Deps struct {
	Config   *config.Config
	RegRepo  *registration.Repository
	AuditSvc *auditlog.Publisher
	Mailer   notification.Transport
}

func healthHandler(cfg *config.Config) gin.HandlerFunc {
	configured := func(ok bool) string {
		if ok {
			return "✓ Configured"
		}
		return "✗ Missing"
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "Server is running",
			"email":     configured(cfg.EmailConfigured()),
			"sheets":    configured(cfg.SheetsConfigured()),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func Setup(r *gin.Engine, deps Deps) {
	cfg := deps.Config

	r.GET("/health", healthHandler(cfg))

	api := r.Group("/api")
	api.Use(middleware.RateLimiter())
	api.Use(middleware.AuditMiddleware())

	api.GET("/health", healthHandler(cfg))

	// ========== Event Catalog ==========
	api.GET("/events", events.ListEvents)
	api.GET("/events/:id", events.GetEvent)

	// ========== Registration ==========
	regSvc := registration.NewService(deps.RegRepo, deps.AuditSvc)
	regHandler := registration.NewHandler(regSvc, cfg)

	api.POST("/submit-to-sheets", regHandler.SubmitToSheets)
	api.GET("/registrations/fallback", regHandler.ListFallback)
	api.POST("/registrations/fallback/sync", regHandler.SyncFallback)

	// ========== Notification ==========
	notifSvc := notification.NewService(deps.Mailer, deps.AuditSvc)
	notifHandler := notification.NewHandler(notifSvc, cfg)

	api.POST("/send-emails", notifHandler.SendBulkEmails)
	api.POST("/send-bulk-emails", notifHandler.SendBulkEmails)
	api.POST("/send-email", notifHandler.SendEmail)
	api.POST("/send-verification-pending", notifHandler.SendVerificationPending)

	// ========== Payment ==========
	paySvc := payment.NewService(cfg)
	payHandler := payment.NewHandler(paySvc, cfg)

	api.GET("/payment/intent", payHandler.Intent)
	api.POST("/payment/order", payHandler.CreateOrder)

	// ========== Reports ==========
	reportHandler := reports.NewHandler(reports.NewExporter(), regSvc)

	api.GET("/registrations/export", reportHandler.ExportFallback)
	api.POST("/receipt", reportHandler.Receipt)
}
