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

func setupDeleteRouter(t *testing.T, activity domain.ActivityRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDeleteHandler(activity, testSecret, nil)
	r.GET("/delete", h.HandleDelete)
	return r
}

func TestHandleDeleteScopes(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
		expect func(m *domain.MockActivityRepository)
	}{
		{
			name:   "day scope",
			params: map[string]string{"u": "alice", "scope": "day", "d": "2026-08-26", "ts": "1756166400"},
			expect: func(m *domain.MockActivityRepository) {
				m.EXPECT().DeleteDay(gomock.Any(), "alice", "2026-08-26").Return(nil)
			},
		},
		{
			name:   "month scope",
			params: map[string]string{"u": "alice", "scope": "month", "y": "2026", "m": "08", "ts": "1756166400"},
			expect: func(m *domain.MockActivityRepository) {
				m.EXPECT().DeleteMonth(gomock.Any(), "alice", "2026-08").Return(nil)
			},
		},
		{
			name:   "all scope",
			params: map[string]string{"u": "alice", "scope": "all", "ts": "1756166400"},
			expect: func(m *domain.MockActivityRepository) {
				m.EXPECT().DeleteAll(gomock.Any(), "alice").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			activity := domain.NewMockActivityRepository(ctrl)
			tt.expect(activity)

			router := setupDeleteRouter(t, activity)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, signedPath(t, "/delete", tt.params), nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestHandleDeleteRejections(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		wantCode int
	}{
		{
			name: "bad signature",
			path: func(t *testing.T) string {
				link := signedPath(t, "/delete", map[string]string{"u": "alice", "scope": "all", "ts": "1756166400"})
				return strings.Replace(link, "alice", "mallory", 1)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "unknown scope",
			path: func(t *testing.T) string {
				return signedPath(t, "/delete", map[string]string{"u": "alice", "scope": "year", "ts": "1756166400"})
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "month scope without month",
			path: func(t *testing.T) string {
				return signedPath(t, "/delete", map[string]string{"u": "alice", "scope": "month", "ts": "1756166400"})
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing scope",
			path: func(t *testing.T) string {
				return "/delete?u=alice&t=x"
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No expectations: rejected deletes must not touch the store.
			router := setupDeleteRouter(t, domain.NewMockActivityRepository(ctrl))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path(t), nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}
