package config

import (
	"os"
	"strconv"
)

const (
	smtpHostEnv     = "SMTP_HOST"
	smtpPortEnv     = "SMTP_PORT"
	smtpUsernameEnv = "SMTP_USERNAME"
	smtpPasswordEnv = "SMTP_PASSWORD"
	smtpFromEnv     = "SMTP_FROM"

	defaultSMTPPort = 587
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func LoadSMTPConfig() *SMTPConfig {
	port := defaultSMTPPort
	if raw := os.Getenv(smtpPortEnv); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			port = parsed
		}
	}

	return &SMTPConfig{
		Host:     os.Getenv(smtpHostEnv),
		Port:     port,
		Username: os.Getenv(smtpUsernameEnv),
		Password: os.Getenv(smtpPasswordEnv),
		From:     os.Getenv(smtpFromEnv),
	}
}

func (c *SMTPConfig) Validate() error {
	if c == nil || c.Host == "" || c.From == "" {
		return ErrSMTPConfigMissing
	}
	return nil
}
