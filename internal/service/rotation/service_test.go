package rotation

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/gymsplit/notification-scheduler/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAdvanceOrFreezeTransitions(t *testing.T) {
	today := date("2026-08-27")

	tests := []struct {
		name      string
		stored    domain.ScheduleState
		total     int
		wantIndex int
		wantSaved domain.ScheduleState
	}{
		{
			name:      "first run advances from implicit zero",
			stored:    domain.NewScheduleState(),
			total:     3,
			wantIndex: 1,
			wantSaved: domain.ScheduleState{CurrentIndex: 1, LastAction: domain.ActionNone, LastActionDate: "2026-08-27"},
		},
		{
			name: "skip yesterday freezes the index",
			stored: domain.ScheduleState{
				CurrentIndex: 2, LastAction: domain.ActionSkipped, LastActionDate: "2026-08-26",
			},
			total:     5,
			wantIndex: 2,
			wantSaved: domain.ScheduleState{CurrentIndex: 2, LastAction: domain.ActionNone, LastActionDate: "2026-08-27"},
		},
		{
			name: "skip two days ago does not freeze",
			stored: domain.ScheduleState{
				CurrentIndex: 2, LastAction: domain.ActionSkipped, LastActionDate: "2026-08-25",
			},
			total:     5,
			wantIndex: 3,
			wantSaved: domain.ScheduleState{CurrentIndex: 3, LastAction: domain.ActionNone, LastActionDate: "2026-08-27"},
		},
		{
			name: "completion yesterday advances with wrap-around",
			stored: domain.ScheduleState{
				CurrentIndex: 4, LastAction: domain.ActionCompleted, LastActionDate: "2026-08-26",
			},
			total:     5,
			wantIndex: 0,
			wantSaved: domain.ScheduleState{CurrentIndex: 0, LastAction: domain.ActionNone, LastActionDate: "2026-08-27"},
		},
		{
			name: "stale index from a longer rotation is reduced before advancing",
			stored: domain.ScheduleState{
				CurrentIndex: 7, LastAction: domain.ActionCompleted, LastActionDate: "2026-08-26",
			},
			total:     3,
			wantIndex: 2,
			wantSaved: domain.ScheduleState{CurrentIndex: 2, LastAction: domain.ActionNone, LastActionDate: "2026-08-27"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := domain.NewMockScheduleRepository(ctrl)
			repo.EXPECT().Load(gomock.Any(), "alice").Return(tt.stored, nil)
			repo.EXPECT().Save(gomock.Any(), "alice", tt.wantSaved).Return(nil)

			svc := NewService(repo)
			idx, err := svc.AdvanceOrFreeze(context.Background(), "alice", today, tt.total)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if idx != tt.wantIndex {
				t.Errorf("index = %d, want %d", idx, tt.wantIndex)
			}
		})
	}
}

func TestAdvanceOrFreezeSameDayIdempotent(t *testing.T) {
	today := date("2026-08-27")

	// The submit handler already flipped the action today; a re-run must
	// neither advance nor reset it.
	stored := domain.ScheduleState{
		CurrentIndex: 3, LastAction: domain.ActionCompleted, LastActionDate: "2026-08-27",
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockScheduleRepository(ctrl)
	repo.EXPECT().Load(gomock.Any(), "alice").Return(stored, nil)
	repo.EXPECT().Save(gomock.Any(), "alice", stored).Return(nil)

	svc := NewService(repo)
	idx, err := svc.AdvanceOrFreeze(context.Background(), "alice", today, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 3 {
		t.Errorf("index = %d, want 3", idx)
	}
}

func TestAdvanceOrFreezeZeroTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockScheduleRepository(ctrl)
	repo.EXPECT().Load(gomock.Any(), "alice").Return(domain.NewScheduleState(), nil)
	repo.EXPECT().Save(gomock.Any(), "alice", gomock.Any()).Return(nil)

	svc := NewService(repo)
	idx, err := svc.AdvanceOrFreeze(context.Background(), "alice", date("2026-08-27"), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 0 {
		t.Errorf("index = %d, want 0 for degenerate rotation", idx)
	}
}

func TestAdvanceOrFreezeStoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")

	t.Run("load failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := domain.NewMockScheduleRepository(ctrl)
		repo.EXPECT().Load(gomock.Any(), "alice").Return(domain.ScheduleState{}, storeErr)

		svc := NewService(repo)
		if _, err := svc.AdvanceOrFreeze(context.Background(), "alice", date("2026-08-27"), 3); !errors.Is(err, storeErr) {
			t.Errorf("expected wrapped store error, got %v", err)
		}
	})

	t.Run("save failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := domain.NewMockScheduleRepository(ctrl)
		repo.EXPECT().Load(gomock.Any(), "alice").Return(domain.NewScheduleState(), nil)
		repo.EXPECT().Save(gomock.Any(), "alice", gomock.Any()).Return(storeErr)

		svc := NewService(repo)
		if _, err := svc.AdvanceOrFreeze(context.Background(), "alice", date("2026-08-27"), 3); !errors.Is(err, storeErr) {
			t.Errorf("expected wrapped store error, got %v", err)
		}
	})
}
