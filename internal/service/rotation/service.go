// Package rotation decides which index of a cyclic plan rotation belongs to a
// calendar day. All selector paths share this single implementation so the
// freeze rule cannot drift between call sites.
package rotation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gymsplit/notification-scheduler/internal/domain"
)

type Service struct {
	schedules domain.ScheduleRepository
}

func NewService(schedules domain.ScheduleRepository) *Service {
	return &Service{
		schedules: schedules,
	}
}

// AdvanceOrFreeze returns today's rotation index for the user and persists
// the day's baseline. The transition is evaluated at most once per distinct
// calendar day:
//
//   - repeat invocations on the same day return the stored index unchanged
//     and keep LastAction intact (a submission handler may already have
//     flipped it);
//   - if the user skipped exactly yesterday, the index freezes so the same
//     day's plan is repeated;
//   - otherwise the index advances by one, wrapping at total. COMPLETED and
//     first-run NONE both advance.
//
// The stored index is reduced modulo total on load because the rotation
// length may have changed since it was written.
func (s *Service) AdvanceOrFreeze(ctx context.Context, userID string, today time.Time, total int) (int, error) {
	if total < 1 {
		total = 1
	}

	state, err := s.schedules.Load(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("load schedule for %s: %w", userID, err)
	}

	idx := state.CurrentIndex % total
	todayKey := today.Format(domain.DateLayout)

	if state.LastActionDate == todayKey {
		state.CurrentIndex = idx
		if err := s.schedules.Save(ctx, userID, state); err != nil {
			return 0, fmt.Errorf("save schedule for %s: %w", userID, err)
		}
		return idx, nil
	}

	yesterday := today.AddDate(0, 0, -1).Format(domain.DateLayout)
	frozen := state.LastAction == domain.ActionSkipped && state.LastActionDate == yesterday
	if !frozen {
		idx = (idx + 1) % total
	}

	next := domain.ScheduleState{
		CurrentIndex:   idx,
		LastAction:     domain.ActionNone,
		LastActionDate: todayKey,
	}
	if err := s.schedules.Save(ctx, userID, next); err != nil {
		return 0, fmt.Errorf("save schedule for %s: %w", userID, err)
	}

	slog.DebugContext(ctx, "rotation advanced",
		slog.String("user", userID),
		slog.String("date", todayKey),
		slog.Int("index", idx),
		slog.Bool("frozen", frozen),
	)

	return idx, nil
}
