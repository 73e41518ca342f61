package selector

import (
	"fmt"
	"strings"

	"github.com/gymsplit/notification-scheduler/internal/domain"
)

// normalizeDay coerces raw plan content into the renderer schema. Malformed
// entries are healed with ordinal placeholders, never rejected: one bad
// exercise must not abort the whole day. dayPos is 1-based and only used for
// the title placeholder.
func normalizeDay(title string, raw []domain.Exercise, dayPos int) *domain.WorkoutDay {
	if strings.TrimSpace(title) == "" {
		title = domain.OrdinalDayTitle(dayPos)
	}

	exercises := make([]domain.Exercise, 0, len(raw))
	for i, e := range raw {
		exercises = append(exercises, normalizeExercise(e, i))
	}

	return &domain.WorkoutDay{
		Title:     title,
		Exercises: exercises,
	}
}

// normalizeExercise fills a missing name with an ordinal placeholder and
// derives a missing ID from the name plus the 1-based position, keeping IDs
// unique within a day even when two exercises share a name.
func normalizeExercise(e domain.Exercise, i int) domain.Exercise {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		name = domain.OrdinalExerciseName(i + 1)
	}

	id := strings.TrimSpace(e.ID)
	if id == "" {
		id = domain.Slug(fmt.Sprintf("%s-%d", name, i+1))
	}

	return domain.Exercise{
		ID:   id,
		Name: name,
		Sets: e.Sets,
		Reps: e.Reps,
	}
}
