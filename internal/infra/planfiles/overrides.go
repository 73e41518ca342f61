package planfiles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gymsplit/notification-scheduler/internal/domain"
)

// overrideFiles are probed in order; the first one that exists wins. YAML is
// a superset of JSON, so one parser covers both.
var overrideFiles = []string{"schedule.yaml", "schedule.yml", "schedule.json"}

type overrideProvider struct {
	dir string
}

// NewOverrideProvider reads the weekly weekday→split map from
// <dataDir>/config/schedule.{yaml,yml,json}. A missing file means no
// overrides at all.
func NewOverrideProvider(dataDir string) domain.OverrideProvider {
	return &overrideProvider{
		dir: filepath.Join(dataDir, "config"),
	}
}

func (p *overrideProvider) Entry(ctx context.Context, weekday string) (string, bool, error) {
	entries, found, err := p.load()
	if err != nil || !found {
		return "", false, err
	}

	raw, present := entries[weekday]
	if !present {
		return "", false, nil
	}

	// Explicit null is a rest marker, same as "" or "rest".
	if raw == nil {
		return "", true, nil
	}

	ref, isString := raw.(string)
	if !isString {
		return "", false, fmt.Errorf("%w: entry for %s must be a filename or null, got %T",
			domain.ErrMalformedOverride, weekday, raw)
	}
	return strings.TrimSpace(ref), true, nil
}

func (p *overrideProvider) load() (map[string]any, bool, error) {
	for _, name := range overrideFiles {
		data, err := os.ReadFile(filepath.Join(p.dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, false, err
		}

		var entries map[string]any
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, false, fmt.Errorf("%w: parse %s: %v", domain.ErrMalformedOverride, name, err)
		}
		return entries, true, nil
	}
	return nil, false, nil
}
