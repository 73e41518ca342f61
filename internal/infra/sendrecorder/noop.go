package sendrecorder

import (
	"context"

	"github.com/gymsplit/notification-scheduler/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.SendRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordSendResults(_ context.Context, _ []domain.SendRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
