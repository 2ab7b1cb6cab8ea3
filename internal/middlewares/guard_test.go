package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRouteGuard(t *testing.T) {
	tests := []struct {
		name             string
		session          *models.Session
		expectedStatus   int
		expectedLocation string
		expectNextCalled bool
		expectDropped    string
	}{
		{
			name:             "token present renders the view",
			session:          &models.Session{ID: "sid", Token: "abc"},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:             "token absent redirects to entry route",
			session:          &models.Session{ID: "sid"},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "/",
			expectDropped:    "sid",
		},
		{
			name:             "no session redirects to entry route",
			session:          nil,
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "/",
		},
		{
			name:             "garbage token is not validated",
			session:          &models.Session{ID: "sid", Token: "not-a-jwt"},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dropper := NewMockViewDropper(ctrl)
			if tt.expectDropped != "" {
				dropper.EXPECT().Forget(tt.expectDropped).Times(1)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if tt.session != nil {
				req = req.WithContext(WithSession(req.Context(), tt.session))
			}
			rr := httptest.NewRecorder()

			RouteGuard(dropper)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}

func TestRouteGuard_NilDropper(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req = req.WithContext(WithSession(req.Context(), &models.Session{ID: "sid"}))
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() { RouteGuard(nil)(next).ServeHTTP(rr, req) })
	assert.Equal(t, http.StatusSeeOther, rr.Code)
}
