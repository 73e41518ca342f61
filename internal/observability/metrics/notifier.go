package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	notifierMeterName = "notifier.service"
)

type NotifierMetrics struct {
	emailsSent       metric.Int64Counter
	restDays         metric.Int64Counter
	sendFailures     metric.Int64Counter
	submissions      metric.Int64Counter
	signatureRejects metric.Int64Counter
	runDuration      metric.Float64Histogram
}

func NewNotifierMetrics() (*NotifierMetrics, error) {
	meter := otel.Meter(notifierMeterName)

	emailsSent, err := meter.Int64Counter(
		"notifier_emails_sent_total",
		metric.WithDescription("Total number of daily emails sent"),
		metric.WithUnit("{email}"),
	)
	if err != nil {
		return nil, err
	}

	restDays, err := meter.Int64Counter(
		"notifier_rest_days_total",
		metric.WithDescription("Total number of rest-day emails sent"),
		metric.WithUnit("{email}"),
	)
	if err != nil {
		return nil, err
	}

	sendFailures, err := meter.Int64Counter(
		"notifier_send_failures_total",
		metric.WithDescription("Total number of failed deliveries"),
		metric.WithUnit("{email}"),
	)
	if err != nil {
		return nil, err
	}

	submissions, err := meter.Int64Counter(
		"notifier_submissions_total",
		metric.WithDescription("Total number of accepted action link submissions"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	signatureRejects, err := meter.Int64Counter(
		"notifier_signature_rejects_total",
		metric.WithDescription("Total number of submissions rejected for a bad signature"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"notifier_run_duration_seconds",
		metric.WithDescription("Delivery run duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	return &NotifierMetrics{
		emailsSent:       emailsSent,
		restDays:         restDays,
		sendFailures:     sendFailures,
		submissions:      submissions,
		signatureRejects: signatureRejects,
		runDuration:      runDuration,
	}, nil
}

func (m *NotifierMetrics) RecordEmailSent(ctx context.Context, source string) {
	m.emailsSent.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
	))
}

func (m *NotifierMetrics) RecordRestDay(ctx context.Context) {
	m.restDays.Add(ctx, 1)
}

func (m *NotifierMetrics) RecordSendFailure(ctx context.Context) {
	m.sendFailures.Add(ctx, 1)
}

func (m *NotifierMetrics) RecordSubmission(ctx context.Context, action string) {
	m.submissions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", action),
	))
}

func (m *NotifierMetrics) RecordSignatureReject(ctx context.Context, endpoint string) {
	m.signatureRejects.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
	))
}

func (m *NotifierMetrics) RecordRunDuration(ctx context.Context, duration time.Duration) {
	m.runDuration.Record(ctx, duration.Seconds())
}
