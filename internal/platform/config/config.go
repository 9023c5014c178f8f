package config

import (
	"fmt"
	"os"
	"time"
)

// Defaults applied when the environment leaves a knob unset.
const (
	DefaultAddr     = ":8080"
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = "587"
	DefaultTokenTTL = 8 * time.Hour
)

// Config captures process-wide configuration loaded once at start.
// It is never mutated after FromEnv returns.
type Config struct {
	Addr        string
	DatabaseURL string
	RedisURL    string

	JWTSigningKey string
	TokenTTL      time.Duration

	SMTPHost        string
	SMTPPort        string
	MailUser        string
	MailAppPassword string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:            os.Getenv("ADDR"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		JWTSigningKey:   os.Getenv("JWT_SECRET"),
		TokenTTL:        DefaultTokenTTL,
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        os.Getenv("SMTP_PORT"),
		MailUser:        os.Getenv("MAIL_USER"),
		MailAppPassword: os.Getenv("MAIL_APP_PASSWORD"),
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = DefaultSMTPHost
	}
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = DefaultSMTPPort
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if duration, err := time.ParseDuration(ttl); err == nil {
			cfg.TokenTTL = duration
		}
	}

	return cfg
}

// Validate fails closed: a service missing its store, signing secret, or mail
// account must not start with partial capability.
func (c Config) Validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.JWTSigningKey == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.MailUser == "" {
		missing = append(missing, "MAIL_USER")
	}
	if c.MailAppPassword == "" {
		missing = append(missing, "MAIL_APP_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missing)
	}
	return nil
}
