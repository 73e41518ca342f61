package domain

import "context"

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=domain

// ScheduleRepository is the durable key-value store for per-user rotation
// state. Load returns NewScheduleState for unknown users; Save is a full
// idempotent overwrite of the prior record.
type ScheduleRepository interface {
	Load(ctx context.Context, userID string) (ScheduleState, error)
	Save(ctx context.Context, userID string, state ScheduleState) error
}

// PlanRepository resolves a user's personal plan. A nil plan with nil error
// means the user has none.
type PlanRepository interface {
	UserPlan(ctx context.Context, userID string) (*Plan, error)
}

// SplitRepository resolves default splits, either by rotation title or by the
// raw reference string a weekly override carries. Unknown splits fail with
// ErrSplitNotFound.
type SplitRepository interface {
	SplitByTitle(ctx context.Context, title string) (*WorkoutDay, error)
	SplitByRef(ctx context.Context, ref string) (*WorkoutDay, error)
}

// OverrideProvider exposes the weekly weekday→split override map. weekday is
// the full English name ("Monday"). ok is false when the map has no entry for
// that weekday; an explicit null or blank entry is returned as ok with an
// empty ref (a rest marker).
type OverrideProvider interface {
	Entry(ctx context.Context, weekday string) (ref string, ok bool, err error)
}

// ActivityRepository stores everything the submission side records per
// (user, ISO date): one-off custom plans, completions, skips and sent
// markers. Deletes by day, calendar month ("2006-01") and whole user history.
type ActivityRepository interface {
	CustomPlan(ctx context.Context, userID, date string) (*CustomPlan, error)
	SaveCustomPlan(ctx context.Context, userID, date string, plan *CustomPlan) error
	RecordCompletion(ctx context.Context, userID, date, exerciseID string) error
	RecordCompleteAll(ctx context.Context, userID, date string) error
	RecordSkip(ctx context.Context, userID, date string) error
	MarkSent(ctx context.Context, userID, date string) error
	DayActivity(ctx context.Context, userID, date string) (*DayActivity, error)
	DeleteDay(ctx context.Context, userID, date string) error
	DeleteMonth(ctx context.Context, userID, month string) error
	DeleteAll(ctx context.Context, userID string) error
}
