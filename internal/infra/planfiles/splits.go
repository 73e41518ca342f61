// Package planfiles is the file-backed side of the store: default splits,
// per-user plans, the weekly override map and the recipient roster all live
// on disk under the configured data directory.
package planfiles

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gymsplit/notification-scheduler/internal/domain"
)

// titleToFile maps the built-in rotation titles to their split files. Titles
// outside the map fall back to slug(title).json.
var titleToFile = map[string]string{
	"Push Day":            "Push_Day.json",
	"Pull Day":            "Pull_Day.json",
	"Leg + Abs Day":       "Leg_plus_Abs_Day.json",
	"Focus Day":           "Focus_Day.json",
	"Full Body Power Day": "Full_Body_Power_Day.json",
}

type splitFile struct {
	Title     string            `json:"title"`
	Exercises []domain.Exercise `json:"exercises"`
}

type splitRepository struct {
	dir string
}

// NewSplitRepository serves default splits from <dataDir>/splits.
func NewSplitRepository(dataDir string) domain.SplitRepository {
	return &splitRepository{
		dir: filepath.Join(dataDir, "splits"),
	}
}

func (r *splitRepository) SplitByTitle(ctx context.Context, title string) (*domain.WorkoutDay, error) {
	if name, mapped := titleToFile[title]; mapped {
		if day, err := r.loadSplit(name, title); err == nil {
			return day, nil
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	day, err := r.loadSplit(domain.Slug(title)+".json", title)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no split file for title %q", domain.ErrSplitNotFound, title)
		}
		return nil, err
	}
	return day, nil
}

func (r *splitRepository) SplitByRef(ctx context.Context, ref string) (*domain.WorkoutDay, error) {
	// Refs come from the override map, which is operator-edited; still,
	// never let them escape the splits directory.
	if ref != filepath.Base(ref) {
		return nil, fmt.Errorf("%w: invalid split ref %q", domain.ErrSplitNotFound, ref)
	}

	day, err := r.loadSplit(ref, "")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", domain.ErrSplitNotFound, ref)
		}
		return nil, err
	}
	return day, nil
}

func (r *splitRepository) loadSplit(filename, fallbackTitle string) (*domain.WorkoutDay, error) {
	path := filepath.Join(r.dir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file splitFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse split file %s: %w", filename, err)
	}

	title := file.Title
	if title == "" {
		title = fallbackTitle
	}
	if title == "" {
		title = titleFromFilename(filename)
	}

	return &domain.WorkoutDay{
		Title:     title,
		Exercises: file.Exercises,
	}, nil
}

// titleFromFilename turns "Leg_plus_Abs_Day.json" into "Leg plus Abs Day".
func titleFromFilename(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	stem = strings.ReplaceAll(stem, "_", " ")
	return strings.ReplaceAll(stem, "-", " ")
}
