package config

import (
	"contact-mailer-backend/pkg/validation"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	LogLevel    string
	// Mail account used to relay contact form submissions
	Mail MailConfig
}

// MailConfig holds the three parameters every contact submission needs.
// They are validated per request, so a missing value never stops the server from starting.
type MailConfig struct {
	User string `env:"EMAIL_USER" validate:"required"` // SMTP login, also used as the sender address
	Pass string `env:"EMAIL_PASS" validate:"required"`
	To   string `env:"EMAIL_TO" validate:"required"` // Inbox that receives the submissions
}

var validate = validation.New()

// Validate reports whether all mail parameters are present.
func (m MailConfig) Validate() error {
	return validate.Struct(m)
}

func LoadConfig() (*Config, error) {
	// Load .env file (only present locally, ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),
		Mail: MailConfig{
			User: getEnv("EMAIL_USER", ""),
			Pass: getEnv("EMAIL_PASS", ""),
			To:   getEnv("EMAIL_TO", ""),
		},
	}

	if err := cfg.Mail.Validate(); err != nil {
		log.Printf("WARNING: %s. Contact submissions will fail.", validation.Summary(err))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
