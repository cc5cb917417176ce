package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) RecordHistogram(ctx context.Context, name string, value float64, labels ...string) {
	m.Called(ctx, name, value, labels)
}

func TestMetrics(t *testing.T) {
	tests := []struct {
		desc    string
		pattern string
		target  string
		status  int
		labels  []string
	}{
		{"route pattern is used as path", "/tables/{table}", "/tables/friend", http.StatusOK,
			[]string{"path", "/tables/{table}", "method", "GET", "status", "200"}},
		{"status written by handler", "/render", "/render", http.StatusBadRequest,
			[]string{"path", "/render", "method", "GET", "status", "400"}},
		{"unmatched route falls back to url path", "/render", "/missing", http.StatusNotFound,
			[]string{"path", "/missing", "method", "GET", "status", "404"}},
	}

	for _, tc := range tests {
		mockMetrics := &mockMetrics{}
		mockMetrics.On("RecordHistogram", mock.Anything, "app_http_response", mock.Anything, tc.labels).Once()

		router := chi.NewRouter()
		router.Use(Metrics(mockMetrics))
		router.Get(tc.pattern, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.target, http.NoBody))

		mockMetrics.AssertExpectations(t)
	}
}
