// Package delivery runs the daily send: select a day per recipient, mint the
// signed action links, render the email and hand it to the mailer.
package delivery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gymsplit/notification-scheduler/internal/config"
	"github.com/gymsplit/notification-scheduler/internal/domain"
	"github.com/gymsplit/notification-scheduler/internal/observability/metrics"
	"github.com/gymsplit/notification-scheduler/internal/observability/tracing"
	"github.com/gymsplit/notification-scheduler/internal/render"
)

// DaySelector resolves what a user trains on a given day.
type DaySelector interface {
	SelectDay(ctx context.Context, userID string, today time.Time) (domain.Selection, error)
}

type Service struct {
	selector DaySelector
	renderer *render.Renderer
	mailer   domain.Mailer
	activity domain.ActivityRepository
	recorder domain.SendRecorder
	metrics  *metrics.NotifierMetrics
	links    *config.LinksConfig

	// recordSent is off for preview runs so rendering leaves no trace in
	// the activity store.
	recordSent bool
}

func NewService(
	selector DaySelector,
	renderer *render.Renderer,
	mailer domain.Mailer,
	activity domain.ActivityRepository,
	recorder domain.SendRecorder,
	notifierMetrics *metrics.NotifierMetrics,
	links *config.LinksConfig,
	recordSent bool,
) *Service {
	return &Service{
		selector:   selector,
		renderer:   renderer,
		mailer:     mailer,
		activity:   activity,
		recorder:   recorder,
		metrics:    notifierMetrics,
		links:      links,
		recordSent: recordSent,
	}
}

// Result summarizes one delivery run.
type Result struct {
	RunID  string
	Sent   int
	Rest   int
	Failed int
}

// Run delivers today's email to every recipient. One recipient failing never
// stops the rest of the batch; failures are counted and recorded.
func (s *Service) Run(ctx context.Context, recipients []domain.Recipient, today time.Time) (*Result, error) {
	runID := uuid.NewString()
	dateKey := today.Format(domain.DateLayout)
	started := time.Now()

	ctx, span := tracing.StartDeliveryRunSpan(ctx, runID, dateKey, len(recipients))
	defer span.End()

	slog.InfoContext(ctx, "delivery run started",
		slog.String("run_id", runID),
		slog.String("date", dateKey),
		slog.Int("recipients", len(recipients)),
	)

	result := &Result{RunID: runID}
	records := make([]domain.SendRecord, 0, len(recipients))

	for _, recipient := range recipients {
		record := s.deliverOne(ctx, recipient, today, dateKey)
		record.RunID = runID
		records = append(records, record)

		switch record.Outcome {
		case domain.OutcomeSent:
			result.Sent++
		case domain.OutcomeRest:
			result.Rest++
		case domain.OutcomeFailed:
			result.Failed++
		}
	}

	if err := s.recorder.RecordSendResults(ctx, records); err != nil {
		slog.WarnContext(ctx, "failed to record send results",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	}

	if s.metrics != nil {
		s.metrics.RecordRunDuration(ctx, time.Since(started))
	}
	tracing.RecordDeliveryRunResult(span, result.Sent, result.Rest, result.Failed, nil)

	slog.InfoContext(ctx, "delivery run finished",
		slog.String("run_id", runID),
		slog.Int("sent", result.Sent),
		slog.Int("rest", result.Rest),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *Service) deliverOne(ctx context.Context, recipient domain.Recipient, today time.Time, dateKey string) domain.SendRecord {
	userID := recipient.UserID()

	ctx, span := tracing.StartRecipientSpan(ctx, userID)
	defer span.End()

	record := domain.SendRecord{UserID: userID, Date: dateKey}

	sel, err := s.selector.SelectDay(ctx, userID, today)
	if err != nil {
		return s.fail(ctx, record, "day selection failed", err)
	}

	var (
		data    render.DailyData
		subject string
	)
	switch day := sel.(type) {
	case *domain.WorkoutDay:
		record.Title = day.Title
		record.Source = day.Source
		record.Outcome = domain.OutcomeSent
		data, err = s.workoutData(recipient, day, dateKey)
		subject = fmt.Sprintf("%s - %s", day.Title, dateKey)
	case *domain.RestDay:
		record.Title = day.Title
		record.Outcome = domain.OutcomeRest
		data, err = s.restData(recipient, day, dateKey)
		subject = fmt.Sprintf("%s - %s", day.Title, dateKey)
	default:
		return s.fail(ctx, record, "unknown selection", fmt.Errorf("unexpected selection type %T", sel))
	}
	if err != nil {
		return s.fail(ctx, record, "link building failed", err)
	}

	html, err := s.renderer.Daily(data)
	if err != nil {
		return s.fail(ctx, record, "render failed", err)
	}

	if err := s.mailer.Send(ctx, recipient.Email, subject, html); err != nil {
		return s.fail(ctx, record, "send failed", err)
	}

	if record.Outcome == domain.OutcomeSent && s.recordSent {
		if err := s.activity.MarkSent(ctx, userID, dateKey); err != nil {
			// The email is out; a failed marker only skews the weekly
			// summary, so log and move on.
			slog.WarnContext(ctx, "failed to mark day as sent",
				slog.String("user", userID),
				slog.String("error", err.Error()),
			)
		}
	}

	if s.metrics != nil {
		if record.Outcome == domain.OutcomeRest {
			s.metrics.RecordRestDay(ctx)
		} else {
			s.metrics.RecordEmailSent(ctx, string(record.Source))
		}
	}

	slog.InfoContext(ctx, "email delivered",
		slog.String("user", userID),
		slog.String("title", record.Title),
		slog.String("outcome", string(record.Outcome)),
	)
	return record
}

func (s *Service) fail(ctx context.Context, record domain.SendRecord, msg string, err error) domain.SendRecord {
	slog.ErrorContext(ctx, msg,
		slog.String("user", record.UserID),
		slog.String("error", err.Error()),
	)
	if s.metrics != nil {
		s.metrics.RecordSendFailure(ctx)
	}
	record.Outcome = domain.OutcomeFailed
	return record
}
