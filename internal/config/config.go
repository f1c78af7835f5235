package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingDatabaseURL = errors.New("missing database credentials (DATABASE_URL)")
	ErrMissingBrevoAPIKey = errors.New("missing email provider api key (BREVO_API_KEY)")
	ErrMissingSMTPConfig  = errors.New("missing smtp credentials (MAIL_HOST/MAIL_USER/MAIL_PASS)")
)

type Config struct {
	HTTPAddr    string
	DatabaseURL string

	// Provedor de email: "brevo" (HTTP) ou "smtp" (gomail).
	EmailProvider string
	BrevoAPIKey   string
	BrevoURL      string
	MailHost      string
	MailPort      int
	MailUser      string
	MailPass      string

	FromName  string
	FromEmail string

	LoginURL     string
	SupportEmail string
	SupportPhone string

	ReminderBatchLimit int
	ReminderTick       time.Duration

	SheetsWebhookURL string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		DatabaseURL: getenv("DATABASE_URL", ""),

		EmailProvider: strings.ToLower(getenv("EMAIL_PROVIDER", "brevo")),
		BrevoAPIKey:   getenv("BREVO_API_KEY", ""),
		BrevoURL:      getenv("BREVO_URL", "https://api.brevo.com"),
		MailHost:      getenv("MAIL_HOST", ""),
		MailPort:      getenvInt("MAIL_PORT", 587),
		MailUser:      getenv("MAIL_USER", ""),
		MailPass:      getenv("MAIL_PASS", ""),

		FromName:  getenv("FROM_NAME", "Meridian Advisory Partners"),
		FromEmail: getenv("FROM_EMAIL", "no-reply@meridianadvisory.com"),

		LoginURL:     getenv("LOGIN_URL", "https://partners.meridianadvisory.com/login"),
		SupportEmail: getenv("SUPPORT_EMAIL", "support@meridianadvisory.com"),
		SupportPhone: getenv("SUPPORT_PHONE", "+44 20 7946 0857"),

		ReminderBatchLimit: getenvInt("REMINDER_BATCH_LIMIT", 200),
		ReminderTick:       getenvDuration("REMINDER_TICK", time.Hour),

		SheetsWebhookURL: getenv("SHEETS_WEBHOOK_URL", ""),

		RabbitUser: getenv("RABBITMQ_USER", "user"),
		RabbitPass: getenv("RABBITMQ_PASS", "password"),
		RabbitHost: getenv("RABBITMQ_HOST", "localhost"),
		RabbitPort: getenv("RABBITMQ_PORT", "5672"),
	}
}

// ReminderConfigError valida as credenciais obrigatórias do dispatcher.
// Banco sem credencial e provedor de email sem chave são erros distintos.
func (c Config) ReminderConfigError() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	switch c.EmailProvider {
	case "smtp":
		if c.MailHost == "" || c.MailUser == "" || c.MailPass == "" {
			return ErrMissingSMTPConfig
		}
	default:
		if c.BrevoAPIKey == "" {
			return ErrMissingBrevoAPIKey
		}
	}
	return nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
