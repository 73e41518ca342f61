package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Port     string
	LogLevel slog.Level
	Timezone *time.Location

	// DataDir is the directory holding splits/, workout_splits/ and config/.
	DataDir string

	Redis    *RedisConfig
	SMTP     *SMTPConfig
	Links    *LinksConfig
	Rotation *RotationConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}

	tz := time.Local
	if name := os.Getenv("TZ_NAME"); name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
		}
		tz = loc
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:     port,
		LogLevel: parseLogLevel(os.Getenv("LOG_LEVEL")),
		Timezone: tz,
		DataDir:  dataDir,
		Redis:    redisConfig,
		SMTP:     LoadSMTPConfig(),
		Links:    LoadLinksConfig(),
		Rotation: LoadRotationConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Today is the current calendar day in the configured timezone, truncated to
// midnight.
func (c *Config) Today() time.Time {
	now := time.Now().In(c.Timezone)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.Timezone)
}
