package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Fest-wide constants used in emails and receipts
var (
	FestName    = "Technovate 2026"
	FestDate    = "March 13, 2026"
	FestVenue   = "Government College of Technology, Coimbatore"
	FestContact = "technovate26@gmail.com"
)

type Config struct {
	Port string

	// SMTP Config (Gmail relay)
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	// Google Sheets persistence: either an Apps Script web-app URL
	// or a native Sheets API spreadsheet + service account
	GoogleScriptURL    string
	SpreadsheetID      string
	ServiceAccountJSON string
	SheetTab           string

	// Redis Config (fallback store for failed sheet rows)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Kafka Config (registration audit events)
	KafkaBrokers string
	KafkaTopic   string

	// Razorpay Keys (optional online payment path)
	RazorpayKey    string
	RazorpaySecret string

	// UPI collection account shown on the payment screen
	UPIID        string
	UPIPayeeName string

	FrontendURL string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	cfg := &Config{
		Port: os.Getenv("PORT"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      os.Getenv("SMTP_PORT"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  os.Getenv("SMTP_FROM_NAME"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		GoogleScriptURL:    os.Getenv("GOOGLE_SCRIPT_URL"),
		SpreadsheetID:      os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"),
		ServiceAccountJSON: os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"),
		SheetTab:           os.Getenv("SHEET_TAB"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   os.Getenv("KAFKA_TOPIC"),

		RazorpayKey:    os.Getenv("RAZORPAY_KEY_ID"),
		RazorpaySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		UPIID:        os.Getenv("UPI_ID"),
		UPIPayeeName: os.Getenv("UPI_PAYEE_NAME"),

		FrontendURL: os.Getenv("FRONTEND_URL"),
	}

	// The original deployment used EMAIL_USER / EMAIL_PASS for the Gmail
	// account; keep honoring them as aliases.
	if cfg.SMTPUsername == "" {
		cfg.SMTPUsername = os.Getenv("EMAIL_USER")
	}
	if cfg.SMTPPassword == "" {
		cfg.SMTPPassword = os.Getenv("EMAIL_PASS")
	}
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "smtp.gmail.com"
	}
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "587"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.SheetTab == "" {
		cfg.SheetTab = "Registrations"
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = "registration-events"
	}
	if cfg.UPIID == "" {
		cfg.UPIID = "kavinak445@okaxis"
	}
	if cfg.UPIPayeeName == "" {
		cfg.UPIPayeeName = FestName
	}

	return cfg
}

// EmailConfigured reports whether the Gmail relay has credentials.
func (c *Config) EmailConfigured() bool {
	return c.SMTPUsername != "" && c.SMTPPassword != ""
}

// SheetsConfigured reports whether any spreadsheet backend is reachable.
func (c *Config) SheetsConfigured() bool {
	return c.GoogleScriptURL != "" || (c.SpreadsheetID != "" && c.ServiceAccountJSON != "")
}

// RazorpayConfigured reports whether the optional order API can be used.
func (c *Config) RazorpayConfigured() bool {
	return c.RazorpayKey != "" && c.RazorpaySecret != ""
}
