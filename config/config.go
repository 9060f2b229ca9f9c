package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store driver names.
const (
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	StoreDriver   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DatabaseURL   string

	MailerProvider     string
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
	FromAddress        string
	FromName           string
}

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production; in production .env
// might not exist and we rely on system environment variables.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),

		StoreDriver:   os.Getenv("STORE_DRIVER"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),
		DatabaseURL:   os.Getenv("DATABASE_URL"),

		MailerProvider: os.Getenv("MAILER_PROVIDER"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       envInt("SMTP_PORT", 587),
		SMTPUsername:   os.Getenv("SMTP_USERNAME"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),

		SESRegion:          os.Getenv("SES_REGION"),
		SESAccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),

		FromAddress: os.Getenv("MAIL_FROM_ADDRESS"),
		FromName:    os.Getenv("MAIL_FROM_NAME"),
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = DriverRedis
	}
	if cfg.MailerProvider == "" {
		cfg.MailerProvider = "noop"
	}
	if cfg.FromAddress == "" {
		cfg.FromAddress = cfg.SMTPUsername
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate enforces the fail-fast startup contract: the credential for the
// selected store driver must be present.
func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when STORE_DRIVER=%s", DriverRedis)
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=%s", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

func envInt(name string, fallback int) int {
	s := os.Getenv(name)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, using %d", name, s, fallback)
		return fallback
	}
	return v
}
