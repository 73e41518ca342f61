package config

import "errors"

var (
	ErrRedisAddrMissing   = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB     = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidTimezone    = errors.New("TZ_NAME is not a valid IANA timezone")
	ErrSigningSecretEmpty = errors.New("SIGNING_SECRET environment variable is required")
	ErrSubmitBaseURLEmpty = errors.New("SUBMIT_BASE_URL environment variable is required")
	ErrSMTPConfigMissing  = errors.New("SMTP_HOST and SMTP_FROM environment variables are required")
	ErrInvalidSMTPPort    = errors.New("SMTP_PORT must be a valid integer")
)
