package domain

import "fmt"

// Exercise is a single entry of a day's plan. ID is a stable slug: repeated
// renders of the same logical exercise must produce the same ID so that
// "mark done" links keep addressing the same resource.
type Exercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sets int    `json:"sets,omitempty"`
	Reps string `json:"reps,omitempty"`
}

// Selection is what the selector hands to the rendering layer: either a
// WorkoutDay or a RestDay. Rest days are a distinct variant rather than a
// workout day with zero exercises so renderers can drop action buttons
// entirely.
type Selection interface {
	isSelection()
}

// DaySource records which precedence branch produced a WorkoutDay.
type DaySource string

const (
	SourceOverride DaySource = "override"
	SourceCustom   DaySource = "custom"
	SourceUserPlan DaySource = "user_plan"
	SourceRotation DaySource = "rotation"
)

type WorkoutDay struct {
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
	Source    DaySource  `json:"-"`
}

func (*WorkoutDay) isSelection() {}

type RestDay struct {
	Title   string
	Message string
}

func (*RestDay) isSelection() {}

// NewRestDay returns the standard rest-day selection.
func NewRestDay() *RestDay {
	return &RestDay{
		Title:   "Rest Day",
		Message: "Today is a rest day. If you still want to train, use Customized Session to log a light or mobility workout.",
	}
}

// Plan is a user's personal multi-day plan. The rotation cycles over Days.
type Plan struct {
	Title string    `json:"title"`
	Days  []PlanDay `json:"days"`
}

type PlanDay struct {
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
}

// CustomPlan is a one-off session for a single (user, date).
type CustomPlan struct {
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
}

// Recipient is one entry of the recipients list.
type Recipient struct {
	ID       string `json:"id" yaml:"id"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Email    string `json:"email" yaml:"email"`
}

// UserID returns the identifier schedule and activity records are keyed by.
func (r Recipient) UserID() string {
	if r.Username != "" {
		return r.Username
	}
	return r.ID
}

// DisplayName returns the name used in email greetings.
func (r Recipient) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.UserID()
}

// OrdinalDayTitle is the placeholder for a day with no title.
func OrdinalDayTitle(pos int) string {
	return fmt.Sprintf("Day %d", pos)
}

// OrdinalExerciseName is the placeholder for an exercise with no name.
func OrdinalExerciseName(pos int) string {
	return fmt.Sprintf("Exercise %d", pos)
}
