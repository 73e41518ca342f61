package domain

// DateLayout is the calendar-date format used for schedule bookkeeping and
// signed link parameters.
const DateLayout = "2006-01-02"

// Action is the outcome recorded for a delivered day. The daily sender writes
// ActionNone as the day's baseline; the submission handler flips it to
// ActionSkipped or ActionCompleted later that same day.
type Action string

const (
	ActionNone      Action = "NONE"
	ActionSkipped   Action = "SKIPPED"
	ActionCompleted Action = "COMPLETED"
)

// ScheduleState is the per-user rotation record. It is the whole state
// machine: there is no separate in-memory object, the persisted record is the
// state. LastActionDate is an ISO date; empty means the user has never been
// scheduled.
type ScheduleState struct {
	CurrentIndex   int    `json:"current_index"`
	LastAction     Action `json:"last_action"`
	LastActionDate string `json:"last_action_date,omitempty"`
}

// NewScheduleState is the zero state returned for users with no persisted
// record. A missing record is a valid initial state, not an error.
func NewScheduleState() ScheduleState {
	return ScheduleState{
		CurrentIndex: 0,
		LastAction:   ActionNone,
	}
}

// DayActivity is everything recorded for one (user, date).
type DayActivity struct {
	Sent         bool            `json:"sent,omitempty"`
	Skipped      bool            `json:"skipped,omitempty"`
	CompletedAll bool            `json:"completed_all,omitempty"`
	Completions  map[string]bool `json:"completions,omitempty"`
}

// Done reports whether the user completed at least one exercise that day.
func (a *DayActivity) Done() bool {
	if a == nil {
		return false
	}
	if a.CompletedAll {
		return true
	}
	for _, v := range a.Completions {
		if v {
			return true
		}
	}
	return false
}
