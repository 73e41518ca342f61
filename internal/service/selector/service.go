// Package selector chooses which plan a user is presented on a given day.
// Precedence: weekly weekday override, then a one-off custom plan, then the
// rotating default (the user's personal plan days when one exists, the fixed
// default split titles otherwise).
package selector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gymsplit/notification-scheduler/internal/domain"
	"github.com/gymsplit/notification-scheduler/internal/service/rotation"
)

const restToken = "rest"

type Service struct {
	rotation       *rotation.Service
	plans          domain.PlanRepository
	splits         domain.SplitRepository
	overrides      domain.OverrideProvider
	activity       domain.ActivityRepository
	rotationTitles []string
}

func NewService(
	rotation *rotation.Service,
	plans domain.PlanRepository,
	splits domain.SplitRepository,
	overrides domain.OverrideProvider,
	activity domain.ActivityRepository,
	rotationTitles []string,
) *Service {
	return &Service{
		rotation:       rotation,
		plans:          plans,
		splits:         splits,
		overrides:      overrides,
		activity:       activity,
		rotationTitles: rotationTitles,
	}
}

// SelectDay resolves the day for one user. Rest days short-circuit before any
// rotation bookkeeping so the stored index stays untouched. A custom plan
// substitutes content only: the rotation still advances as if a default day
// had occurred.
func (s *Service) SelectDay(ctx context.Context, userID string, today time.Time) (domain.Selection, error) {
	weekday := today.Weekday().String()

	ref, ok, err := s.overrides.Entry(ctx, weekday)
	if err != nil {
		return nil, err
	}
	if ok {
		return s.fromOverride(ctx, weekday, ref)
	}

	dateKey := today.Format(domain.DateLayout)
	custom, err := s.activity.CustomPlan(ctx, userID, dateKey)
	if err != nil {
		return nil, fmt.Errorf("lookup custom plan for %s: %w", userID, err)
	}
	if custom != nil && len(custom.Exercises) > 0 {
		// Content comes from the custom plan, schedule bookkeeping proceeds
		// as usual.
		total, err := s.rotationTotal(ctx, userID)
		if err != nil {
			return nil, err
		}
		if _, err := s.rotation.AdvanceOrFreeze(ctx, userID, today, total); err != nil {
			return nil, err
		}

		title := custom.Title
		if title == "" {
			title = "Custom Session"
		}
		day := normalizeDay(title, custom.Exercises, 1)
		day.Source = domain.SourceCustom
		return day, nil
	}

	plan, err := s.plans.UserPlan(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup plan for %s: %w", userID, err)
	}
	if plan != nil && len(plan.Days) > 0 {
		idx, err := s.rotation.AdvanceOrFreeze(ctx, userID, today, len(plan.Days))
		if err != nil {
			return nil, err
		}

		planDay := plan.Days[idx]
		title := planDay.Title
		if title == "" {
			title = domain.OrdinalDayTitle(idx + 1)
		}
		day := normalizeDay(title, planDay.Exercises, idx+1)
		day.Source = domain.SourceUserPlan
		return day, nil
	}

	idx, err := s.rotation.AdvanceOrFreeze(ctx, userID, today, len(s.rotationTitles))
	if err != nil {
		return nil, err
	}
	if len(s.rotationTitles) == 0 {
		return nil, fmt.Errorf("no default rotation titles configured")
	}

	split, err := s.splits.SplitByTitle(ctx, s.rotationTitles[idx])
	if err != nil {
		return nil, fmt.Errorf("resolve rotation split %q: %w", s.rotationTitles[idx], err)
	}

	day := normalizeDay(split.Title, split.Exercises, idx+1)
	day.Source = domain.SourceRotation
	return day, nil
}

func (s *Service) fromOverride(ctx context.Context, weekday, ref string) (domain.Selection, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" || strings.EqualFold(trimmed, restToken) {
		slog.DebugContext(ctx, "weekly override rest day", slog.String("weekday", weekday))
		return domain.NewRestDay(), nil
	}

	split, err := s.splits.SplitByRef(ctx, trimmed)
	if err != nil {
		return nil, fmt.Errorf("weekly override for %s: %w", weekday, err)
	}

	day := normalizeDay(split.Title, split.Exercises, 1)
	day.Source = domain.SourceOverride
	return day, nil
}

// rotationTotal is the rotation length a default day would have used, so a
// custom plan keeps the index moving on the same cycle.
func (s *Service) rotationTotal(ctx context.Context, userID string) (int, error) {
	plan, err := s.plans.UserPlan(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("lookup plan for %s: %w", userID, err)
	}
	if plan != nil && len(plan.Days) > 0 {
		return len(plan.Days), nil
	}
	return len(s.rotationTitles), nil
}
