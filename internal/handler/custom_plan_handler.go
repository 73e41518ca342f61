package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gymsplit/notification-scheduler/internal/domain"
	"github.com/gymsplit/notification-scheduler/internal/observability/metrics"
)

// CustomPlanHandler stores one-off sessions submitted from the customize
// page. The request is authorized by the same signed-link scheme as submit:
// the signature covers the query parameters, the plan rides in the body.
type CustomPlanHandler struct {
	activity domain.ActivityRepository
	secret   string
	metrics  *metrics.NotifierMetrics
}

func NewCustomPlanHandler(activity domain.ActivityRepository, secret string, notifierMetrics *metrics.NotifierMetrics) *CustomPlanHandler {
	return &CustomPlanHandler{
		activity: activity,
		secret:   secret,
		metrics:  notifierMetrics,
	}
}

type customPlanRequest struct {
	Date      string            `json:"date" binding:"required"`
	Title     string            `json:"title"`
	Exercises []domain.Exercise `json:"exercises" binding:"required"`
}

func (h *CustomPlanHandler) HandleCustomPlan(c *gin.Context) {
	ctx := c.Request.Context()

	user := c.Query("u")
	if user == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})
		return
	}

	if !verifySignature(c, h.secret) {
		if h.metrics != nil {
			h.metrics.RecordSignatureReject(ctx, "custom-plan")
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid signature"})
		return
	}

	var req customPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	plan := &domain.CustomPlan{
		Title:     req.Title,
		Exercises: req.Exercises,
	}
	if err := h.activity.SaveCustomPlan(ctx, user, req.Date, plan); err != nil {
		slog.ErrorContext(ctx, "failed to save custom plan",
			slog.String("user", user),
			slog.String("date", req.Date),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save"})
		return
	}

	slog.InfoContext(ctx, "custom plan saved",
		slog.String("user", user),
		slog.String("date", req.Date),
		slog.Int("exercises", len(req.Exercises)),
	)
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
