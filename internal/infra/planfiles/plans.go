package planfiles

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gymsplit/notification-scheduler/internal/domain"
)

// planFile accepts the loose key variants personal plan files carry in the
// wild: a day may call its title "name", an exercise may call its name
// "exercise".
type planFile struct {
	Title string        `json:"title"`
	Days  []planFileDay `json:"days"`
}

type planFileDay struct {
	Title     string             `json:"title"`
	Name      string             `json:"name"`
	Exercises []planFileExercise `json:"exercises"`
}

type planFileExercise struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Exercise string `json:"exercise"`
	Sets     int    `json:"sets"`
	Reps     string `json:"reps"`
}

type planRepository struct {
	dir string
}

// NewPlanRepository serves personal plans from
// <dataDir>/workout_splits/<user>/plan.json.
func NewPlanRepository(dataDir string) domain.PlanRepository {
	return &planRepository{
		dir: filepath.Join(dataDir, "workout_splits"),
	}
}

func (r *planRepository) UserPlan(ctx context.Context, userID string) (*domain.Plan, error) {
	path := filepath.Join(r.dir, userID, "plan.json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file planFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse plan for %s: %w", userID, err)
	}

	plan := &domain.Plan{
		Title: file.Title,
		Days:  make([]domain.PlanDay, 0, len(file.Days)),
	}
	for _, day := range file.Days {
		title := day.Title
		if title == "" {
			title = day.Name
		}

		exercises := make([]domain.Exercise, 0, len(day.Exercises))
		for _, e := range day.Exercises {
			name := e.Name
			if name == "" {
				name = e.Exercise
			}
			exercises = append(exercises, domain.Exercise{
				ID:   e.ID,
				Name: name,
				Sets: e.Sets,
				Reps: e.Reps,
			})
		}

		plan.Days = append(plan.Days, domain.PlanDay{
			Title:     title,
			Exercises: exercises,
		})
	}

	return plan, nil
}
