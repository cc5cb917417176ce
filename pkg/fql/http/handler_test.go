package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sllt/fql/pkg/fql/config"
	"github.com/sllt/fql/pkg/fql/logging"
	"github.com/sllt/fql/pkg/fql/metrics"
	"github.com/sllt/fql/pkg/fql/qb"
)

type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Meta    map[string]any  `json:"meta"`
}

func newTestServer(t *testing.T, cfg map[string]string) (*Server, metrics.Manager, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer

	logger := logging.New(logging.DEBUG, &logs, &logs)
	m := metrics.NewMetricsManager(logger)

	srv, err := NewServer(config.NewMockConfig(cfg), qb.Default(), logger, m)
	require.NoError(t, err)

	return srv, m, &logs
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, reader))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestService_Render(t *testing.T) {
	tests := []struct {
		desc   string
		body   string
		status int
		query  string
	}{
		{
			desc:   "explicit columns with where and sort",
			body:   `{"select":["url","user_id"],"from":"url_like","where":["user_id = 123"],"sort":[{"field":"url"}]}`,
			status: http.StatusOK,
			query:  "SELECT url, user_id FROM url_like WHERE user_id = 123 ORDER BY url ASC ;",
		},
		{
			desc:   "wildcard expands to registry columns",
			body:   `{"from":"friend"}`,
			status: http.StatusOK,
			query:  "SELECT uid1, uid2 FROM friend  ;",
		},
		{
			desc:   "single select string",
			body:   `{"select":"name","from":"user","where":["uid = me()"],"sort":[{"field":"name","direction":"desc"}]}`,
			status: http.StatusOK,
			query:  "SELECT name FROM user WHERE uid = me() ORDER BY name DESC ;",
		},
		{
			desc:   "count expands to first column",
			body:   `{"select":"COUNT(*)","from":"friend"}`,
			status: http.StatusOK,
			query:  "SELECT uid1 FROM friend  ;",
		},
		{
			desc:   "limit only",
			body:   `{"select":"a","from":"t","limit":{"page":3,"length":4}}`,
			status: http.StatusOK,
			query:  "SELECT a FROM t  LIMIT 3,4;",
		},
	}

	for i, tc := range tests {
		srv, _, _ := newTestServer(t, nil)

		rec, env := do(t, srv.Handler(), http.MethodPost, "/render", tc.body)

		require.Equal(t, tc.status, rec.Code, "TEST[%d], Failed.\n%s", i, tc.desc)

		var data renderResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))

		assert.Equal(t, tc.query, data.Query, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, 0, env.Code, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, "ok", env.Message, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestService_RenderErrors(t *testing.T) {
	tests := []struct {
		desc    string
		body    string
		status  int
		message string
	}{
		{"unknown table with wildcard", `{"from":"nope"}`, http.StatusNotFound, `table "nope" not found`},
		{"missing from", `{"select":"a"}`, http.StatusBadRequest, "from is a required field"},
		{"invalid direction", `{"from":"friend","sort":[{"field":"uid1","direction":"sideways"}]}`,
			http.StatusBadRequest, "direction must be one of"},
		{"zero length", `{"from":"friend","limit":{"page":0,"length":0}}`, http.StatusBadRequest, "length"},
		{"empty where predicate", `{"from":"friend","where":[""]}`, http.StatusBadRequest, "required"},
		{"select of wrong type", `{"select":123,"from":"friend"}`, http.StatusBadRequest, "invalid request body"},
		{"malformed json", `{"from":`, http.StatusBadRequest, "invalid request body"},
		{"empty body", "", http.StatusBadRequest, "request body is empty"},
	}

	for i, tc := range tests {
		srv, _, _ := newTestServer(t, nil)

		rec, env := do(t, srv.Handler(), http.MethodPost, "/render", tc.body)

		assert.Equal(t, tc.status, rec.Code, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.status, env.Code, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Contains(t, env.Message, tc.message, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, "null", string(env.Data), "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestService_RenderMetricsAndLogs(t *testing.T) {
	srv, m, logs := newTestServer(t, nil)

	do(t, srv.Handler(), http.MethodPost, "/render", `{"from":"friend"}`)
	do(t, srv.Handler(), http.MethodPost, "/render", `{"from":"nope"}`)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	assert.Contains(t, rec.Body.String(), `fql_render_total{status="ok",table="friend"} 1`)
	assert.Contains(t, rec.Body.String(), `fql_render_total{status="error",table="nope"} 1`)
	assert.Contains(t, rec.Body.String(), `app_http_response_count{method="POST",path="/render",status="404"} 1`)

	assert.Contains(t, logs.String(), `"type":"render"`)
	assert.Contains(t, logs.String(), `[builder] unknown table`)
}

func TestService_Tables(t *testing.T) {
	srv, _, _ := newTestServer(t, nil)

	rec, env := do(t, srv.Handler(), http.MethodGet, "/tables", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var tables []string
	require.NoError(t, json.Unmarshal(env.Data, &tables))

	assert.Len(t, tables, qb.Default().Registry().Len())
	assert.Contains(t, tables, "friend")
	assert.IsIncreasing(t, tables)
	assert.InDelta(t, float64(len(tables)), env.Meta["count"], 0)
}

func TestService_Columns(t *testing.T) {
	srv, _, _ := newTestServer(t, nil)

	rec, env := do(t, srv.Handler(), http.MethodGet, "/tables/url_like", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["url","user_id"]`, string(env.Data))

	rec, env = do(t, srv.Handler(), http.MethodGet, "/tables/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `table "nope" not found`, env.Message)
}

func TestServer_NotFoundAndNormalization(t *testing.T) {
	srv, _, _ := newTestServer(t, nil)

	rec, env := do(t, srv.Handler(), http.MethodGet, "/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "route not registered", env.Message)

	rec, _ = do(t, srv.Handler(), http.MethodGet, "//tables//friend", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RequestID(t *testing.T) {
	srv, _, logs := newTestServer(t, nil)

	rec, _ := do(t, srv.Handler(), http.MethodGet, "/tables", "")
	assert.Len(t, rec.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/tables", http.NoBody)
	req.Header.Set("X-Request-ID", "abc-123")

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	assert.Contains(t, logs.String(), `"request_id":"abc-123"`)
}

func TestServer_RateLimit(t *testing.T) {
	srv, _, _ := newTestServer(t, map[string]string{"RATE_LIMIT_RPS": "0.001", "RATE_LIMIT_BURST": "1"})

	rec, _ := do(t, srv.Handler(), http.MethodGet, "/tables", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, srv.Handler(), http.MethodGet, "/tables", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "too many requests", env.Message)
}

func TestNewServer_InvalidConfig(t *testing.T) {
	tests := []struct {
		desc string
		cfg  map[string]string
	}{
		{"http port", map[string]string{"HTTP_PORT": "http"}},
		{"metrics port", map[string]string{"METRICS_PORT": "x"}},
		{"rps", map[string]string{"RATE_LIMIT_RPS": "fast"}},
		{"burst", map[string]string{"RATE_LIMIT_BURST": "1.5"}},
	}

	for i, tc := range tests {
		logger := logging.New(logging.ERROR, io.Discard, io.Discard)

		_, err := NewServer(config.NewMockConfig(tc.cfg), qb.Default(), logger, metrics.NewMetricsManager(logger))

		require.ErrorIs(t, err, errInvalidConfig, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}
