package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Errorf(format string, args ...any) { m.Called(format, args) }
func (m *mockLogger) Warnf(format string, args ...any)  { m.Called(format, args) }

func scrape(t *testing.T, m Manager) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return string(body)
}

func TestManager_Counter(t *testing.T) {
	m := NewMetricsManager(&mockLogger{})
	m.NewCounter("fql_render_total", "number of rendered queries", "table", "status")

	ctx := context.Background()
	m.IncrementCounter(ctx, "fql_render_total", "table", "friend", "status", "ok")
	m.IncrementCounter(ctx, "fql_render_total", "table", "friend", "status", "ok")
	m.IncrementCounter(ctx, "fql_render_total", "table", "user", "status", "error")

	body := scrape(t, m)

	assert.Contains(t, body, `fql_render_total{status="ok",table="friend"} 2`)
	assert.Contains(t, body, `fql_render_total{status="error",table="user"} 1`)
}

func TestManager_Histogram(t *testing.T) {
	m := NewMetricsManager(&mockLogger{})
	m.NewHistogram("app_http_response", "response time", []float64{.01, .1, 1}, "path", "method", "status")

	m.RecordHistogram(context.Background(), "app_http_response", 0.05,
		"path", "/render", "method", "POST", "status", "200")

	body := scrape(t, m)

	assert.Contains(t, body, `app_http_response_bucket{method="POST",path="/render",status="200",le="0.01"} 0`)
	assert.Contains(t, body, `app_http_response_bucket{method="POST",path="/render",status="200",le="0.1"} 1`)
	assert.Contains(t, body, `app_http_response_count{method="POST",path="/render",status="200"} 1`)
}

func TestManager_Errors(t *testing.T) {
	tests := []struct {
		desc   string
		method string
		record func(m Manager)
	}{
		{"unknown counter", "Errorf", func(m Manager) {
			m.IncrementCounter(context.Background(), "missing")
		}},
		{"unknown histogram", "Errorf", func(m Manager) {
			m.RecordHistogram(context.Background(), "missing", 1)
		}},
		{"odd labels", "Errorf", func(m Manager) {
			m.IncrementCounter(context.Background(), "c", "table")
		}},
		{"wrong label names", "Errorf", func(m Manager) {
			m.IncrementCounter(context.Background(), "c", "path", "/x")
		}},
		{"duplicate counter", "Warnf", func(m Manager) {
			m.NewCounter("c", "again", "table")
		}},
	}

	for i, tc := range tests {
		log := &mockLogger{}
		log.On(tc.method, mock.Anything, mock.Anything).Once()

		m := NewMetricsManager(log)
		m.NewCounter("c", "counter", "table")

		tc.record(m)

		log.AssertExpectations(t)
		assert.Len(t, log.Calls, 1, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}
