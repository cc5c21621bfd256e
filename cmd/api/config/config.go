package config

import (
	"errors"
	"os"
	"strings"
)

type Config struct {
	Port            string
	AllowedOrigins  []string
	GenAIAPIKey     string
	GenAIModel      string
	StripePublicKey string
	StripeSecretKey string
	StripeProductID string
	UploadDir       string
	SupportInbox    string
	SendgridAPIKey  string
	MailFromName    string
	MailFromEmail   string
}

// Load reads configuration from the environment. Database settings are read
// directly by the database package.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		GenAIAPIKey:     os.Getenv("GOOGLE_AI_STUDIO_API_KEY"),
		GenAIModel:      getEnv("GENAI_MODEL", "gemini-1.5-flash"),
		StripePublicKey: os.Getenv("STRIPE_PUBLIC_KEY"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		StripeProductID: os.Getenv("STRIPE_PRODUCT_ID"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		SupportInbox:    getEnv("SUPPORT_INBOX_EMAIL", "support@localhost"),
		SendgridAPIKey:  os.Getenv("SENDGRID_API_KEY"),
		MailFromName:    getEnv("MAIL_FROM_NAME", "EduMate"),
		MailFromEmail:   getEnv("MAIL_FROM_EMAIL", "no-reply@localhost"),
	}

	cfg.AllowedOrigins = strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ",")

	if cfg.GenAIAPIKey == "" {
		return nil, errors.New("GOOGLE_AI_STUDIO_API_KEY is not set in the environment")
	}
	if cfg.StripeSecretKey == "" {
		return nil, errors.New("STRIPE_SECRET_KEY is not set in the environment")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
