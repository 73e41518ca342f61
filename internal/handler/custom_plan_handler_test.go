package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/gymsplit/notification-scheduler/internal/domain"
)

func setupCustomPlanRouter(t *testing.T, activity domain.ActivityRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCustomPlanHandler(activity, testSecret, nil)
	r.POST("/api/v1/custom-plan", h.HandleCustomPlan)
	return r
}

func TestHandleCustomPlanSaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activity := domain.NewMockActivityRepository(ctrl)
	activity.EXPECT().SaveCustomPlan(gomock.Any(), "alice", "2026-08-26", &domain.CustomPlan{
		Title: "Mobility",
		Exercises: []domain.Exercise{
			{ID: "foam-roll", Name: "Foam Roll", Sets: 2, Reps: "60s"},
		},
	}).Return(nil)

	router := setupCustomPlanRouter(t, activity)

	link := signedPath(t, "/api/v1/custom-plan", map[string]string{"u": "alice", "ts": "1756166400"})
	body := `{"date":"2026-08-26","title":"Mobility","exercises":[{"id":"foam-roll","name":"Foam Roll","sets":2,"reps":"60s"}]}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, link, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestHandleCustomPlanErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		body     string
		wantCode int
	}{
		{
			name: "bad signature",
			path: func(t *testing.T) string {
				link := signedPath(t, "/api/v1/custom-plan", map[string]string{"u": "alice", "ts": "1756166400"})
				return strings.Replace(link, "alice", "mallory", 1)
			},
			body:     `{"date":"2026-08-26","exercises":[{"name":"Foam Roll"}]}`,
			wantCode: http.StatusForbidden,
		},
		{
			name: "missing user",
			path: func(t *testing.T) string {
				return "/api/v1/custom-plan?ts=1756166400&t=x"
			},
			body:     `{"date":"2026-08-26","exercises":[{"name":"Foam Roll"}]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "invalid body",
			path: func(t *testing.T) string {
				return signedPath(t, "/api/v1/custom-plan", map[string]string{"u": "alice", "ts": "1756166400"})
			},
			body:     `{"title":"no date or exercises"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "invalid date",
			path: func(t *testing.T) string {
				return signedPath(t, "/api/v1/custom-plan", map[string]string{"u": "alice", "ts": "1756166400"})
			},
			body:     `{"date":"today","exercises":[{"name":"Foam Roll"}]}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No store expectations: every rejected request leaves no trace.
			router := setupCustomPlanRouter(t, domain.NewMockActivityRepository(ctrl))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.path(t), strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}
