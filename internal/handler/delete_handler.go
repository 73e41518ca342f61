package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gymsplit/notification-scheduler/internal/domain"
	"github.com/gymsplit/notification-scheduler/internal/observability/metrics"
)

// DeleteHandler removes activity history on the user's request, scoped to a
// day, a calendar month or everything.
type DeleteHandler struct {
	activity domain.ActivityRepository
	secret   string
	metrics  *metrics.NotifierMetrics
}

func NewDeleteHandler(activity domain.ActivityRepository, secret string, notifierMetrics *metrics.NotifierMetrics) *DeleteHandler {
	return &DeleteHandler{
		activity: activity,
		secret:   secret,
		metrics:  notifierMetrics,
	}
}

func (h *DeleteHandler) HandleDelete(c *gin.Context) {
	ctx := c.Request.Context()

	user := c.Query("u")
	scope := c.Query("scope")
	if user == "" || scope == "" {
		c.String(http.StatusBadRequest, "missing parameters")
		return
	}

	if !verifySignature(c, h.secret) {
		if h.metrics != nil {
			h.metrics.RecordSignatureReject(ctx, "delete")
		}
		slog.WarnContext(ctx, "delete rejected: bad signature",
			slog.String("user", user),
			slog.String("scope", scope),
		)
		c.String(http.StatusForbidden, "invalid signature")
		return
	}

	var err error
	switch scope {
	case "day":
		date := c.Query("d")
		if _, parseErr := time.Parse(domain.DateLayout, date); parseErr != nil {
			c.String(http.StatusBadRequest, "invalid date")
			return
		}
		err = h.activity.DeleteDay(ctx, user, date)
	case "month":
		month := c.Query("y") + "-" + c.Query("m")
		if _, parseErr := time.Parse("2006-01", month); parseErr != nil {
			c.String(http.StatusBadRequest, "invalid month")
			return
		}
		err = h.activity.DeleteMonth(ctx, user, month)
	case "all":
		err = h.activity.DeleteAll(ctx, user)
	default:
		c.String(http.StatusBadRequest, "invalid scope")
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete activity",
			slog.String("user", user),
			slog.String("scope", scope),
			slog.String("error", err.Error()),
		)
		c.String(http.StatusInternalServerError, "failed to delete")
		return
	}

	slog.InfoContext(ctx, "activity deleted",
		slog.String("user", user),
		slog.String("scope", scope),
	)
	c.String(http.StatusOK, "Deleted.")
}
