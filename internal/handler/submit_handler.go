package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gymsplit/notification-scheduler/internal/domain"
	"github.com/gymsplit/notification-scheduler/internal/observability/metrics"
)

// Sentinel values of the ex parameter.
const (
	exerciseAll  = "ALL"
	exerciseSkip = "SKIP"
)

// SubmitHandler accepts the signed action links from daily emails: one
// exercise done, the whole day done, or the day skipped.
type SubmitHandler struct {
	activity  domain.ActivityRepository
	schedules domain.ScheduleRepository
	secret    string
	metrics   *metrics.NotifierMetrics
}

func NewSubmitHandler(
	activity domain.ActivityRepository,
	schedules domain.ScheduleRepository,
	secret string,
	notifierMetrics *metrics.NotifierMetrics,
) *SubmitHandler {
	return &SubmitHandler{
		activity:  activity,
		schedules: schedules,
		secret:    secret,
		metrics:   notifierMetrics,
	}
}

func (h *SubmitHandler) HandleSubmit(c *gin.Context) {
	ctx := c.Request.Context()

	user := c.Query("u")
	date := c.Query("d")
	exercise := c.Query("ex")
	if user == "" || date == "" || exercise == "" {
		c.String(http.StatusBadRequest, "missing parameters")
		return
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		c.String(http.StatusBadRequest, "invalid date")
		return
	}

	// Verify before any write: a tampered link must leave no trace.
	if !verifySignature(c, h.secret) {
		if h.metrics != nil {
			h.metrics.RecordSignatureReject(ctx, "submit")
		}
		slog.WarnContext(ctx, "submit rejected: bad signature",
			slog.String("user", user),
			slog.String("date", date),
		)
		c.String(http.StatusForbidden, "invalid signature")
		return
	}

	var (
		action  domain.Action
		message string
		err     error
	)
	switch exercise {
	case exerciseSkip:
		action = domain.ActionSkipped
		message = "Skip recorded. The rotation will hold tomorrow."
		err = h.activity.RecordSkip(ctx, user, date)
	case exerciseAll:
		action = domain.ActionCompleted
		message = "All exercises recorded as done. Nice work!"
		err = h.activity.RecordCompleteAll(ctx, user, date)
	default:
		action = domain.ActionCompleted
		message = "Recorded. Keep going!"
		err = h.activity.RecordCompletion(ctx, user, date, exercise)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to record submission",
			slog.String("user", user),
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
		c.String(http.StatusInternalServerError, "failed to record")
		return
	}

	if err := h.setLastAction(c, user, date, action); err != nil {
		slog.ErrorContext(ctx, "failed to update schedule action",
			slog.String("user", user),
			slog.String("error", err.Error()),
		)
		c.String(http.StatusInternalServerError, "failed to record")
		return
	}

	if h.metrics != nil {
		h.metrics.RecordSubmission(ctx, string(action))
	}
	slog.InfoContext(ctx, "submission recorded",
		slog.String("user", user),
		slog.String("date", date),
		slog.String("exercise", exercise),
	)
	c.String(http.StatusOK, message)
}

// setLastAction flips the schedule's last action for the submitted date while
// leaving the rotation index alone.
func (h *SubmitHandler) setLastAction(c *gin.Context, user, date string, action domain.Action) error {
	ctx := c.Request.Context()

	state, err := h.schedules.Load(ctx, user)
	if err != nil {
		return err
	}

	state.LastAction = action
	state.LastActionDate = date
	return h.schedules.Save(ctx, user, state)
}
