package config

import (
	"os"
	"strings"
)

const rotationTitlesEnv = "ROTATION_TITLES"

// defaultRotationTitles is the built-in split rotation, in order.
var defaultRotationTitles = []string{
	"Push Day",
	"Pull Day",
	"Leg + Abs Day",
	"Focus Day",
	"Full Body Power Day",
}

type RotationConfig struct {
	Titles []string
}

// LoadRotationConfig reads ROTATION_TITLES as a comma-separated list of day
// titles, falling back to the built-in five-day split.
func LoadRotationConfig() *RotationConfig {
	raw := os.Getenv(rotationTitlesEnv)
	if raw == "" {
		return &RotationConfig{Titles: defaultRotationTitles}
	}

	var titles []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			titles = append(titles, trimmed)
		}
	}
	if len(titles) == 0 {
		titles = defaultRotationTitles
	}

	return &RotationConfig{Titles: titles}
}
