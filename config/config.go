package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
)

type Config struct {
	Port     string
	LogLevel string
	// Email gateway
	EmailProvider string // "resend" (default) or "smtp"
	ResendAPIKey  string
	ResendBaseURL string // Empty means the SDK default endpoint
	// SMTP fallback (Brevo style relay)
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	// Mail identities
	ContactFrom      string
	CareersFrom      string
	AdminEmailTo     string
	OrganizationName string
	TeamSignature    string
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine, production injects real environment variables
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "5000"),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		// Email gateway
		EmailProvider: strings.ToLower(getEnv("EMAIL_PROVIDER", ProviderResend)),
		ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
		ResendBaseURL: getEnv("RESEND_BASE_URL", ""),
		// SMTP
		SMTPHost:     getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		// Mail identities
		ContactFrom:      getEnv("MAIL_CONTACT_FROM", "Aluxim Contact <onboarding@resend.dev>"),
		CareersFrom:      getEnv("MAIL_CAREERS_FROM", "Aluxim Careers <onboarding@resend.dev>"),
		AdminEmailTo:     getEnv("MAIL_ADMIN_TO", "noreplyvancy@gmail.com"),
		OrganizationName: getEnv("ORGANIZATION_NAME", "Aluxim Pvt Ltd"),
		TeamSignature:    getEnv("TEAM_SIGNATURE", "The Aluxim Team"),
	}

	if cfg.EmailProvider == ProviderResend && cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Outgoing emails will fail.")
	}

	return cfg, nil
}

// getEnv returns the variable's value, or fallback when it is unset or empty
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
