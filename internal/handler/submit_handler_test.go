package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/gymsplit/notification-scheduler/internal/domain"
	"github.com/gymsplit/notification-scheduler/internal/signing"
)

const testSecret = "test-secret"

func signedPath(t *testing.T, path string, params map[string]string) string {
	t.Helper()
	link, err := signing.SignedURL(path, params, testSecret)
	if err != nil {
		t.Fatalf("failed to sign link: %v", err)
	}
	return link
}

func setupSubmitRouter(t *testing.T, activity domain.ActivityRepository, schedules domain.ScheduleRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSubmitHandler(activity, schedules, testSecret, nil)
	r.GET("/submit", h.HandleSubmit)
	return r
}

func TestHandleSubmitActions(t *testing.T) {
	tests := []struct {
		name       string
		exercise   string
		wantAction domain.Action
		expect     func(m *domain.MockActivityRepository)
	}{
		{
			name:       "single exercise completion",
			exercise:   "bench-press",
			wantAction: domain.ActionCompleted,
			expect: func(m *domain.MockActivityRepository) {
				m.EXPECT().RecordCompletion(gomock.Any(), "alice", "2026-08-26", "bench-press").Return(nil)
			},
		},
		{
			name:       "complete all",
			exercise:   "ALL",
			wantAction: domain.ActionCompleted,
			expect: func(m *domain.MockActivityRepository) {
				m.EXPECT().RecordCompleteAll(gomock.Any(), "alice", "2026-08-26").Return(nil)
			},
		},
		{
			name:       "skip today",
			exercise:   "SKIP",
			wantAction: domain.ActionSkipped,
			expect: func(m *domain.MockActivityRepository) {
				m.EXPECT().RecordSkip(gomock.Any(), "alice", "2026-08-26").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			activity := domain.NewMockActivityRepository(ctrl)
			tt.expect(activity)

			schedules := domain.NewMockScheduleRepository(ctrl)
			stored := domain.ScheduleState{CurrentIndex: 2, LastAction: domain.ActionNone, LastActionDate: "2026-08-26"}
			schedules.EXPECT().Load(gomock.Any(), "alice").Return(stored, nil)
			schedules.EXPECT().Save(gomock.Any(), "alice", domain.ScheduleState{
				CurrentIndex: 2, LastAction: tt.wantAction, LastActionDate: "2026-08-26",
			}).Return(nil)

			router := setupSubmitRouter(t, activity, schedules)

			link := signedPath(t, "/submit", map[string]string{
				"u": "alice", "d": "2026-08-26", "ex": tt.exercise, "ts": "1756166400",
			})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, link, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestHandleSubmitBadSignatureWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: a tampered link must not touch either store.
	activity := domain.NewMockActivityRepository(ctrl)
	schedules := domain.NewMockScheduleRepository(ctrl)

	router := setupSubmitRouter(t, activity, schedules)

	link := signedPath(t, "/submit", map[string]string{
		"u": "alice", "d": "2026-08-26", "ex": "bench-press", "ts": "1756166400",
	})
	// Tamper with the exercise after signing.
	link = strings.Replace(link, "bench-press", "squat", 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, link, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestHandleSubmitValidation(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "missing exercise", path: "/submit?u=alice&d=2026-08-26&t=x"},
		{name: "missing user", path: "/submit?d=2026-08-26&ex=a&t=x"},
		{name: "bad date", path: "/submit?u=alice&d=26-08-2026&ex=a&t=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := setupSubmitRouter(t,
				domain.NewMockActivityRepository(ctrl),
				domain.NewMockScheduleRepository(ctrl))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}
