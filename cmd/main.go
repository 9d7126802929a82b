package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kavinak445/technovate-backend/config"
	"github.com/kavinak445/technovate-backend/internal/auditlog"
	"github.com/kavinak445/technovate-backend/internal/notification"
	"github.com/kavinak445/technovate-backend/internal/registration"
	"github.com/kavinak445/technovate-backend/internal/sheets"
	"github.com/kavinak445/technovate-backend/routes"
	"github.com/kavinak445/technovate-backend/utils"
)

func main() {
	cfg := config.Load()

	// Sheet backend: native Sheets API when a spreadsheet is configured,
	// otherwise the Apps Script web app.
	var appender registration.Appender
	switch {
	case cfg.SpreadsheetID != "" && cfg.ServiceAccountJSON != "":
		client, err := sheets.New(context.Background(), cfg.ServiceAccountJSON, cfg.SpreadsheetID)
		if err != nil {
			log.Fatalf("❌ Sheets API init failed: %v", err)
		}
		appender = registration.NewAPIAppender(client, cfg.SheetTab)
		log.Printf("✅ Sheets API backend (spreadsheet %s)", client.SpreadsheetID())
	case cfg.GoogleScriptURL != "":
		appender = registration.NewScriptAppender(sheets.NewScript(cfg.GoogleScriptURL))
		log.Println("✅ Apps Script backend configured")
	default:
		log.Println("⚠️ No spreadsheet backend configured; submissions will be rejected")
	}

	rdb := utils.NewRedisClient(cfg)
	auditSvc := auditlog.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer auditSvc.Close()

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	allowedOrigins := []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:4173"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, routes.Deps{
		Config:   cfg,
		RegRepo:  registration.NewRepository(appender, rdb),
		AuditSvc: auditSvc,
		Mailer:   notification.NewEmailSender(cfg),
	})

	fmt.Println("=================================")
	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	if cfg.EmailConfigured() {
		fmt.Printf("📧 Email Service: %s\n", cfg.SMTPUsername)
	} else {
		fmt.Println("📧 Email Service: Not configured")
	}
	fmt.Println("=================================")

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
