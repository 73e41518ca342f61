package domain

import "context"

// SendOutcome classifies one recipient's result within a delivery run.
type SendOutcome string

const (
	OutcomeSent   SendOutcome = "sent"
	OutcomeRest   SendOutcome = "rest"
	OutcomeFailed SendOutcome = "failed"
)

type SendRecord struct {
	RunID   string
	UserID  string
	Date    string
	Outcome SendOutcome
	Title   string
	Source  DaySource
}

// SendRecorder receives per-recipient outcomes of a delivery run for
// offline analysis. Implementations must tolerate empty batches.
type SendRecorder interface {
	RecordSendResults(ctx context.Context, records []SendRecord) error
	Close() error
}
