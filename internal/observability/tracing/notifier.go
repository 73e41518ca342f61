package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const notifierTracerName = "github.com/gymsplit/notification-scheduler/internal/service/delivery"

func NotifierTracer() trace.Tracer {
	return otel.Tracer(notifierTracerName)
}

func StartDeliveryRunSpan(ctx context.Context, runID, date string, recipients int) (context.Context, trace.Span) {
	return NotifierTracer().Start(ctx, "notifier.delivery_run",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.String("date", date),
			attribute.Int("recipients", recipients),
		),
	)
}

func StartRecipientSpan(ctx context.Context, userID string) (context.Context, trace.Span) {
	return NotifierTracer().Start(ctx, "notifier.recipient",
		trace.WithAttributes(
			attribute.String("user", userID),
		),
	)
}

func RecordDeliveryRunResult(span trace.Span, sent, rest, failed int, err error) {
	span.SetAttributes(
		attribute.Int("run.sent_count", sent),
		attribute.Int("run.rest_count", rest),
		attribute.Int("run.failed_count", failed),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
